// Package imaging renders marker layouts to image files and reads them back.
//
// Each grid cell is drawn as a square of CellSize pixels on a solid
// background:
//   - grid.Filled: a disc of radius 0.35 cell at the cell centre
//   - grid.Crossed: two strokes from (0.25,0.25) to (0.75,0.75) and from
//     (0.75,0.25) to (0.25,0.75), 0.2 cell wide
//   - anything else: nothing
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Cell (r,c)
// covers x in [c*CellSize, (c+1)*CellSize) and y in [r*CellSize, (r+1)*CellSize).
// Drawing is evaluated at pixel centres with integer arithmetic, so a
// symmetric layout renders to an image that is exactly mirror invariant.
//
// # Formats
//
//   - png, jpeg: raster, written with github.com/disintegration/imaging
//   - svg: vector, written with github.com/ajstarks/svgo
//
// # Reading Back
//
// DecodeLayout samples two points per cell of a raster rendering and
// classifies them against the palette in CIE-Lab space, so lossy JPEG output
// still decodes. FindMarkers counts connected marker regions as an independent
// check on the decoded cells. ImageCache avoids re-reading files across tool
// calls.
package imaging

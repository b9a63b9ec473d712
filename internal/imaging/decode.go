package imaging

import (
	"fmt"
	"image"

	"github.com/ironsheep/egg-symmetry/internal/grid"
)

// DecodeLayout reads a raster rendering back into markers.
//
// The cell size is derived from the image width and cols, and the image must
// be exactly rows×cols cells of at least MinCellSize pixels. Two samples are
// taken per cell:
//   - the centre, covered by both the disc and the cross
//   - a quarter cell above the centre, covered only by the disc
//
// The samples are compared against the palette colours, not thresholds, so the
// decoder works for any palette and survives JPEG compression.
func DecodeLayout(img image.Image, rows, cols int, p Palette) (grid.Layout, error) {
	if rows < 1 || cols < 1 {
		return grid.Layout{}, fmt.Errorf("%w: got %d and %d", grid.ErrDimensions, rows, cols)
	}
	bounds := img.Bounds()
	cell := bounds.Dx() / cols
	if cell*cols != bounds.Dx() || cell*rows != bounds.Dy() {
		return grid.Layout{}, fmt.Errorf("image %dx%d is not a %dx%d grid of square cells",
			bounds.Dx(), bounds.Dy(), cols, rows)
	}
	if cell < MinCellSize {
		return grid.Layout{}, fmt.Errorf("cell size %d below minimum %d", cell, MinCellSize)
	}

	cells := make([]grid.Marker, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := bounds.Min.X + c*cell + cell/2
			y := bounds.Min.Y + r*cell + cell/2
			center := p.isForeground(img.At(x, y))
			top := p.isForeground(img.At(x, y-cell/4))

			switch {
			case top:
				cells[r*cols+c] = grid.Filled
			case center:
				cells[r*cols+c] = grid.Crossed
			default:
				cells[r*cols+c] = grid.Blank
			}
		}
	}
	return grid.NewLayout(rows, cols, cells)
}

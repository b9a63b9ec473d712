// Package grid models marker layouts on an R×C grid and the symmetry orbits
// of their cells.
//
// A Layout is a row-major sequence of markers. Orbits lists, for each cell
// of the top-left quadrant, the grid cells it is tied to by the two mirror
// flips. Setting every cell of an orbit to the same marker always produces a
// symmetric layout, and every symmetric layout arises that way, which is what
// Expand and Enumerate rely on.
package grid

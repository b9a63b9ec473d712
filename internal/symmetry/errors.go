package symmetry

import "errors"

// Errors returned by this package. They are wrapped with the offending value,
// so check them with errors.Is.
var (
	// ErrTypeMismatch is returned when a dimension supplied as a generic
	// number is not an integer.
	ErrTypeMismatch = errors.New("symmetry: dimension is not an integer")

	// ErrInvalidDimensions is returned when rows or cols is less than 1 or
	// the grid exceeds MaxCells.
	ErrInvalidDimensions = errors.New("symmetry: invalid dimensions")

	// ErrUnsupportedAlgorithm is returned for an unknown or unimplemented
	// algorithm selector.
	ErrUnsupportedAlgorithm = errors.New("symmetry: unsupported algorithm")

	// ErrQuadrantTooLarge is returned by the brute-force counter when the
	// quadrant has more cells than a 64-bit assignment mask can enumerate.
	ErrQuadrantTooLarge = errors.New("symmetry: quadrant too large for brute force")
)

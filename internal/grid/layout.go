package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Marker is the symbol drawn in one cell.
type Marker int

const (
	// Crossed marks an "off" cell with an X.
	Crossed Marker = 0
	// Filled marks an "on" cell with a disc.
	Filled Marker = 1
	// Blank draws nothing. Any value other than Crossed and Filled is blank.
	Blank Marker = 2
)

// String returns a one-character picture of the marker.
func (m Marker) String() string {
	switch m {
	case Crossed:
		return "x"
	case Filled:
		return "o"
	default:
		return "."
	}
}

// ErrCellCount is returned when the number of cells does not match rows*cols.
var ErrCellCount = errors.New("grid: cell count does not match dimensions")

// ErrDimensions is returned for non-positive rows or cols.
var ErrDimensions = errors.New("grid: dimensions must be positive")

// Layout is a rows×cols grid of markers stored row by row.
type Layout struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Cells []Marker `json:"cells"`
}

// NewLayout validates the dimensions against the cell count.
func NewLayout(rows, cols int, cells []Marker) (Layout, error) {
	if rows < 1 || cols < 1 {
		return Layout{}, fmt.Errorf("%w: got %d and %d", ErrDimensions, rows, cols)
	}
	if len(cells) != rows*cols {
		return Layout{}, fmt.Errorf("%w: %d cells for %dx%d", ErrCellCount, len(cells), rows, cols)
	}
	return Layout{Rows: rows, Cols: cols, Cells: cells}, nil
}

// FromInts converts plain integers to markers, as received from JSON or flags.
func FromInts(rows, cols int, values []int) (Layout, error) {
	cells := make([]Marker, len(values))
	for i, v := range values {
		cells[i] = Marker(v)
	}
	return NewLayout(rows, cols, cells)
}

// At returns the marker at row r, column c.
func (l Layout) At(r, c int) Marker {
	return l.Cells[r*l.Cols+c]
}

// IsSymmetric reports whether the layout is unchanged by the horizontal and
// vertical flips. Invariance under the 180° rotation follows from the two.
// Markers are compared as drawn, so all blank values are equal.
func (l Layout) IsSymmetric() bool {
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			m := l.At(r, c).normalized()
			if m != l.At(l.Rows-1-r, c).normalized() || m != l.At(r, l.Cols-1-c).normalized() {
				return false
			}
		}
	}
	return true
}

// OnCount returns the number of Filled cells.
func (l Layout) OnCount() int {
	n := 0
	for _, m := range l.Cells {
		if m == Filled {
			n++
		}
	}
	return n
}

// Ints returns the cells as plain integers.
func (l Layout) Ints() []int {
	out := make([]int, len(l.Cells))
	for i, m := range l.Cells {
		out[i] = int(m)
	}
	return out
}

// String draws the layout one row per line.
func (l Layout) String() string {
	var b strings.Builder
	for r := 0; r < l.Rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < l.Cols; c++ {
			b.WriteString(l.At(r, c).String())
		}
	}
	return b.String()
}

func (m Marker) normalized() Marker {
	if m != Crossed && m != Filled {
		return Blank
	}
	return m
}

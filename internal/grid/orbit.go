package grid

import "fmt"

// Cell is a grid position.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Orbit is the set of distinct cells tied together by the flips and the
// rotation. Its size is 4 for a corner, 2 for an edge and 1 for the centre.
type Orbit struct {
	Cells []Cell `json:"cells"`
}

// Size returns the number of grid cells in the orbit.
func (o Orbit) Size() int {
	return len(o.Cells)
}

// Orbits returns one orbit per cell of the top-left quadrant, in row-major
// quadrant order.
func Orbits(rows, cols int) []Orbit {
	qr := (rows + 1) / 2
	qc := (cols + 1) / 2
	orbits := make([]Orbit, 0, qr*qc)
	for r := 0; r < qr; r++ {
		for c := 0; c < qc; c++ {
			candidates := []Cell{
				{r, c},
				{rows - 1 - r, c},
				{r, cols - 1 - c},
				{rows - 1 - r, cols - 1 - c},
			}
			var o Orbit
			seen := make(map[Cell]bool, 4)
			for _, cell := range candidates {
				if !seen[cell] {
					seen[cell] = true
					o.Cells = append(o.Cells, cell)
				}
			}
			orbits = append(orbits, o)
		}
	}
	return orbits
}

// Expand turns a quadrant assignment into a full symmetric layout. Bit i of
// mask sets orbit i (in Orbits order) to Filled; clear bits become Crossed.
func Expand(rows, cols int, mask uint64) Layout {
	return expand(rows, cols, Orbits(rows, cols), mask)
}

func expand(rows, cols int, orbits []Orbit, mask uint64) Layout {
	cells := make([]Marker, rows*cols)
	for i, o := range orbits {
		m := Crossed
		if mask&(1<<uint(i)) != 0 {
			m = Filled
		}
		for _, cell := range o.Cells {
			cells[cell.Row*cols+cell.Col] = m
		}
	}
	return Layout{Rows: rows, Cols: cols, Cells: cells}
}

// maxEnumerateOrbits bounds the quadrant mask width.
const maxEnumerateOrbits = 62

// Enumerate calls fn with every symmetric layout that has exactly on Filled
// cells, in increasing quadrant-mask order. It stops after limit layouts when
// limit > 0, or as soon as fn returns false. It returns the number of
// layouts passed to fn.
func Enumerate(rows, cols, on, limit int, fn func(Layout) bool) (int, error) {
	if rows < 1 || cols < 1 {
		return 0, fmt.Errorf("%w: got %d and %d", ErrDimensions, rows, cols)
	}
	orbits := Orbits(rows, cols)
	if len(orbits) > maxEnumerateOrbits {
		return 0, fmt.Errorf("grid: %d quadrant cells is too many to enumerate", len(orbits))
	}
	if on < 0 || on > rows*cols {
		return 0, nil
	}

	emitted := 0
	for mask := uint64(0); mask < uint64(1)<<len(orbits); mask++ {
		size := 0
		for i, o := range orbits {
			if mask&(1<<uint(i)) != 0 {
				size += o.Size()
			}
		}
		if size != on {
			continue
		}
		emitted++
		if !fn(expand(rows, cols, orbits, mask)) {
			break
		}
		if limit > 0 && emitted >= limit {
			break
		}
	}
	return emitted, nil
}

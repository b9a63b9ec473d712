package symmetry

import (
	"fmt"
	"math/big"
)

// Partition describes how the cells of one quadrant split into symmetry
// orbit classes.
type Partition struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`

	// QuadrantRows and QuadrantCols are ceil(Rows/2) and ceil(Cols/2).
	QuadrantRows int `json:"quadrant_rows"`
	QuadrantCols int `json:"quadrant_cols"`

	// EdgeRow and EdgeCol are the edge cells lying on the central row and
	// central column, after removing the centre cell.
	EdgeRow int `json:"edge_row"`
	EdgeCol int `json:"edge_col"`

	Corners int `json:"corners"` // orbit size 4
	Edges   int `json:"edges"`   // orbit size 2
	Center  int `json:"center"`  // orbit size 1, either 0 or 1
}

// Decompose folds a rows×cols grid into one quadrant and counts the quadrant
// cells per orbit class. Callers validate rows and cols.
func Decompose(rows, cols int) Partition {
	qr := (rows + 1) / 2
	qc := (cols + 1) / 2
	eggs := qr * qc

	// Cells shared by two quadrant copies across each fold.
	edgeRow := (2*qr - rows) * qc
	edgeCol := (2*qc - cols) * qr

	center := 0
	if edgeRow > 0 && edgeCol > 0 {
		// The centre cell was counted on both axes.
		center = 1
		edgeRow--
		edgeCol--
	}

	return Partition{
		Rows:         rows,
		Cols:         cols,
		QuadrantRows: qr,
		QuadrantCols: qc,
		EdgeRow:      edgeRow,
		EdgeCol:      edgeCol,
		Corners:      eggs - edgeRow - edgeCol - center,
		Edges:        edgeRow + edgeCol,
		Center:       center,
	}
}

// EggsInQuadrant returns the number of independent binary choices, one per
// quadrant cell.
func (p Partition) EggsInQuadrant() int {
	return p.Corners + p.Edges + p.Center
}

// TotalEggs reconstructs the grid cell count from the orbit sizes.
func (p Partition) TotalEggs() int {
	return 4*p.Corners + 2*p.Edges + p.Center
}

// TotalSymmetries returns 2^EggsInQuadrant, the number of symmetric
// configurations over all on-cell counts.
func (p Partition) TotalSymmetries() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(p.EggsInQuadrant()))
}

// String renders the breakdown the way the info output prints it.
func (p Partition) String() string {
	return fmt.Sprintf("quadrant %d (%d row, %d col), corners %d, edges %d (%d row, %d col), center %d",
		p.EggsInQuadrant(), p.QuadrantRows, p.QuadrantCols,
		p.Corners, p.Edges, p.EdgeRow, p.EdgeCol, p.Center)
}

package imaging

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/ironsheep/egg-symmetry/internal/grid"
)

// MinCellSize is the smallest cell that still keeps a disc and a cross
// distinguishable at the decoder's sample points.
const MinCellSize = 16

// DefaultCellSize is the cell edge used when none is configured.
const DefaultCellSize = 64

// RenderRaster draws the layout on a new image of cols*cellSize by
// rows*cellSize pixels.
func RenderRaster(l grid.Layout, cellSize int, p Palette) (*image.NRGBA, error) {
	if err := checkRenderable(l, cellSize); err != nil {
		return nil, err
	}

	width := l.Cols * cellSize
	height := l.Rows * cellSize
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(toNRGBA(p.Background)), image.Point{}, draw.Src)

	fg := toNRGBA(p.Foreground)
	shape := newCellShape(cellSize)
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			m := l.At(r, c)
			if m != grid.Filled && m != grid.Crossed {
				continue
			}
			x0, y0 := c*cellSize, r*cellSize
			for dy := 0; dy < cellSize; dy++ {
				for dx := 0; dx < cellSize; dx++ {
					if shape.covers(m, dx, dy) {
						img.SetNRGBA(x0+dx, y0+dy, fg)
					}
				}
			}
		}
	}
	return img, nil
}

// checkRenderable rejects cell sizes the decoder cannot read back and
// layouts whose cells do not fill the grid.
func checkRenderable(l grid.Layout, cellSize int) error {
	if cellSize < MinCellSize {
		return fmt.Errorf("cell size %d below minimum %d", cellSize, MinCellSize)
	}
	if len(l.Cells) != l.Rows*l.Cols {
		return fmt.Errorf("%w: %d cells for %dx%d", grid.ErrCellCount, len(l.Cells), l.Rows, l.Cols)
	}
	return nil
}

// cellShape tests pixel coverage in half-pixel units relative to the cell
// centre, so mirrored pixels see exactly mirrored offsets.
type cellShape struct {
	size         int
	discRadius2  float64 // squared disc radius
	strokeWidth  float64 // max |dx-dy| on the main diagonal stroke
	strokeLength int     // max |dx+dy| on the main diagonal stroke
}

func newCellShape(size int) cellShape {
	radius := 0.35 * float64(2*size)
	return cellShape{
		size:         size,
		discRadius2:  radius * radius,
		strokeWidth:  0.1 * float64(2*size) * math.Sqrt2,
		strokeLength: size,
	}
}

func (s cellShape) covers(m grid.Marker, px, py int) bool {
	dx := 2*px + 1 - s.size
	dy := 2*py + 1 - s.size
	switch m {
	case grid.Filled:
		return float64(dx*dx+dy*dy) <= s.discRadius2
	case grid.Crossed:
		sum, diff := abs(dx+dy), abs(dx-dy)
		onMain := float64(diff) <= s.strokeWidth && sum <= s.strokeLength
		onAnti := float64(sum) <= s.strokeWidth && diff <= s.strokeLength
		return onMain || onAnti
	default:
		return false
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

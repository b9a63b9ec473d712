package imaging

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/ironsheep/egg-symmetry/internal/grid"
)

// RenderSVG writes the layout as an SVG document. Geometry matches
// RenderRaster, rounded to whole pixels.
func RenderSVG(w io.Writer, l grid.Layout, cellSize int, p Palette) error {
	if err := checkRenderable(l, cellSize); err != nil {
		return err
	}

	at := func(f float64) int { return int(math.Round(f * float64(cellSize))) }
	fill := "fill:" + p.Foreground.Hex()
	stroke := fmt.Sprintf("stroke:%s;stroke-width:%d", p.Foreground.Hex(), at(0.2))

	width, height := l.Cols*cellSize, l.Rows*cellSize
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+p.Background.Hex())

	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			x0, y0 := c*cellSize, r*cellSize
			switch l.At(r, c) {
			case grid.Filled:
				canvas.Circle(x0+at(0.5), y0+at(0.5), at(0.35), fill)
			case grid.Crossed:
				canvas.Line(x0+at(0.25), y0+at(0.25), x0+at(0.75), y0+at(0.75), stroke)
				canvas.Line(x0+at(0.75), y0+at(0.25), x0+at(0.25), y0+at(0.75), stroke)
			}
		}
	}
	canvas.End()
	return nil
}

package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/egg-symmetry/internal/grid"
)

// mustLayout builds a layout from plain integers.
func mustLayout(t *testing.T, rows, cols int, cells ...int) grid.Layout {
	t.Helper()
	l, err := grid.FromInts(rows, cols, cells)
	if err != nil {
		t.Fatalf("FromInts failed: %v", err)
	}
	return l
}

// egg3x5 is a symmetric 3x5 layout with 13 eggs and two crosses.
func egg3x5(t *testing.T) grid.Layout {
	return mustLayout(t, 3, 5,
		1, 1, 0, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 0, 1, 1,
	)
}

func rgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func isWhite(img image.Image, x, y int) bool {
	r, g, b := rgbAt(img, x, y)
	return r == 255 && g == 255 && b == 255
}

func isBlack(img image.Image, x, y int) bool {
	r, g, b := rgbAt(img, x, y)
	return r == 0 && g == 0 && b == 0
}

// createInMemoryImage creates a solid-color image.
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

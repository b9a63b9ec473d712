package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
)

// IsMirrorInvariant reports whether the image is unchanged by a horizontal
// flip and by a vertical flip. A rendered layout passes exactly when the
// layout itself is symmetric.
func IsMirrorInvariant(img image.Image) bool {
	return samePixels(img, transform.FlipH(img)) && samePixels(img, transform.FlipV(img))
}

// samePixels compares two images of equal size pixel by pixel. The images may
// have different bounds origins.
func samePixels(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return false
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			r1, g1, b1, a1 := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			r2, g2, b2, a2 := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				return false
			}
		}
	}
	return true
}

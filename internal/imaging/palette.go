package imaging

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Default palette colours: white markers on black.
const (
	DefaultBackground = "#000000"
	DefaultForeground = "#ffffff"
)

// Palette holds the two colours of a rendering.
type Palette struct {
	Background colorful.Color
	Foreground colorful.Color
}

// DefaultPalette returns white markers on a black background.
func DefaultPalette() Palette {
	p, _ := ParsePalette(DefaultForeground, DefaultBackground)
	return p
}

// ParsePalette parses "#rrggbb" or "#rgb" colours. Empty strings fall back to
// the defaults.
func ParsePalette(foreground, background string) (Palette, error) {
	if foreground == "" {
		foreground = DefaultForeground
	}
	if background == "" {
		background = DefaultBackground
	}
	fg, err := colorful.Hex(foreground)
	if err != nil {
		return Palette{}, fmt.Errorf("invalid foreground color %q: %w", foreground, err)
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return Palette{}, fmt.Errorf("invalid background color %q: %w", background, err)
	}
	if fg.DistanceLab(bg) < 0.1 {
		return Palette{}, fmt.Errorf("foreground %s and background %s are too close to tell apart", fg.Hex(), bg.Hex())
	}
	return Palette{Background: bg, Foreground: fg}, nil
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// isForeground reports whether c is nearer the foreground than the background.
func (p Palette) isForeground(c color.Color) bool {
	cc, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent pixels carry no colour.
		return false
	}
	return cc.DistanceLab(p.Foreground) < cc.DistanceLab(p.Background)
}

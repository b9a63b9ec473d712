package imaging

import (
	"image/color"
	"testing"
)

func TestParsePalette(t *testing.T) {
	tests := []struct {
		name    string
		fg, bg  string
		wantFg  string
		wantBg  string
		wantErr bool
	}{
		{"defaults", "", "", "#ffffff", "#000000", false},
		{"custom", "#FF0000", "#00ff00", "#ff0000", "#00ff00", false},
		{"short form", "#fff", "#000", "#ffffff", "#000000", false},
		{"invalid foreground", "red", "", "", "", true},
		{"invalid background", "", "#GGGGGG", "", "", true},
		{"indistinguishable", "#101010", "#101011", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePalette(tt.fg, tt.bg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Foreground.Hex() != tt.wantFg || p.Background.Hex() != tt.wantBg {
				t.Errorf("got %s on %s, want %s on %s", p.Foreground.Hex(), p.Background.Hex(), tt.wantFg, tt.wantBg)
			}
		})
	}
}

func TestPalette_IsForeground(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		c    color.Color
		want bool
	}{
		{color.RGBA{255, 255, 255, 255}, true},
		{color.RGBA{230, 230, 230, 255}, true},
		{color.RGBA{0, 0, 0, 255}, false},
		{color.RGBA{40, 40, 40, 255}, false},
		{color.RGBA{0, 0, 0, 0}, false},
	}
	for _, tt := range tests {
		if got := p.isForeground(tt.c); got != tt.want {
			t.Errorf("isForeground(%v): got %v, want %v", tt.c, got, tt.want)
		}
	}
}

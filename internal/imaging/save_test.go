package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/egg-symmetry/internal/grid"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"svg", FormatSVG, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q): error %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveLayout(t *testing.T) {
	dir := t.TempDir()

	for _, f := range []Format{FormatPNG, FormatJPEG, FormatSVG} {
		t.Run(string(f), func(t *testing.T) {
			base := filepath.Join(dir, "nested", "0009_003")
			res, err := SaveLayout(egg3x5(t), SaveOptions{Format: f, BaseName: base})
			if err != nil {
				t.Fatalf("SaveLayout failed: %v", err)
			}
			if res.Path != base+"."+f.Extension() {
				t.Errorf("Path: got %s, want %s.%s", res.Path, base, f.Extension())
			}
			if res.Width != 320 || res.Height != 192 {
				t.Errorf("dimensions: got %dx%d, want 320x192", res.Width, res.Height)
			}
			info, err := os.Stat(res.Path)
			if err != nil {
				t.Fatalf("output missing: %v", err)
			}
			if info.Size() == 0 {
				t.Error("output is empty")
			}
		})
	}
}

func TestSaveLayout_SVGContent(t *testing.T) {
	base := filepath.Join(t.TempDir(), "egg")
	res, err := SaveLayout(egg3x5(t), SaveOptions{Format: FormatSVG, BaseName: base, CellSize: 32})
	if err != nil {
		t.Fatalf("SaveLayout failed: %v", err)
	}
	data, err := os.ReadFile(res.Path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got := strings.Count(string(data), "<circle"); got != 13 {
		t.Errorf("circles: got %d, want 13", got)
	}
}

func TestSaveLayout_Errors(t *testing.T) {
	if _, err := SaveLayout(egg3x5(t), SaveOptions{}); err == nil {
		t.Error("missing base name should fail")
	}
	base := filepath.Join(t.TempDir(), "tiny")
	if _, err := SaveLayout(egg3x5(t), SaveOptions{BaseName: base, CellSize: 4}); err == nil {
		t.Error("tiny cell size should fail")
	}
}

func TestSaveLayout_RejectedRenderWritesNothing(t *testing.T) {
	dir := t.TempDir()
	short := grid.Layout{Rows: 2, Cols: 2, Cells: []grid.Marker{grid.Filled}}

	tests := []struct {
		name   string
		layout grid.Layout
		opts   SaveOptions
	}{
		{"svg tiny cells", egg3x5(t), SaveOptions{Format: FormatSVG, CellSize: 4}},
		{"svg short layout", short, SaveOptions{Format: FormatSVG}},
		{"png tiny cells", egg3x5(t), SaveOptions{Format: FormatPNG, CellSize: 4}},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.BaseName = filepath.Join(dir, "out", fmt.Sprintf("case-%d", i))
			if _, err := SaveLayout(tt.layout, tt.opts); err == nil {
				t.Fatal("expected error, got nil")
			}
			path := tt.opts.BaseName + "." + tt.opts.Format.Extension()
			if _, err := os.Stat(path); !os.IsNotExist(err) {
				t.Errorf("%s should not exist, stat gave %v", path, err)
			}
		})
	}
}

package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/egg-symmetry/internal/grid"
)

// Format is an output file format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatSVG  Format = "svg"
)

// ParseFormat validates a format name. The empty string means png.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatJPEG, "jpg":
		return FormatJPEG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want png, jpeg or svg)", name)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// SaveOptions controls SaveLayout.
type SaveOptions struct {
	Format   Format
	BaseName string // output path without extension
	CellSize int
	Palette  Palette
}

// SaveResult describes a written file.
type SaveResult struct {
	Path   string `json:"path"`
	Format Format `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SaveLayout renders the layout and writes it to BaseName plus the format's
// extension, creating the parent directory if needed.
func SaveLayout(l grid.Layout, opts SaveOptions) (*SaveResult, error) {
	if opts.BaseName == "" {
		return nil, fmt.Errorf("output name is required")
	}
	if opts.CellSize == 0 {
		opts.CellSize = DefaultCellSize
	}
	if opts.Format == "" {
		opts.Format = FormatPNG
	}
	if opts.Palette == (Palette{}) {
		opts.Palette = DefaultPalette()
	}

	if err := checkRenderable(l, opts.CellSize); err != nil {
		return nil, err
	}

	path := opts.BaseName + "." + opts.Format.Extension()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	result := &SaveResult{
		Path:   path,
		Format: opts.Format,
		Width:  l.Cols * opts.CellSize,
		Height: l.Rows * opts.CellSize,
	}

	if opts.Format == FormatSVG {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		if err := RenderSVG(f, l, opts.CellSize, opts.Palette); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		return result, nil
	}

	img, err := RenderRaster(l, opts.CellSize, opts.Palette)
	if err != nil {
		return nil, err
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(95)); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return result, nil
}

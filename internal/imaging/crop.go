package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// CropResult contains the cropped image data
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// CropQuadrant extracts the top-left ceil(rows/2)×ceil(cols/2) cells of a
// rendered layout. For a symmetric layout this quadrant determines the rest.
func CropQuadrant(img image.Image, rows, cols int, scale float64) (*CropResult, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("invalid grid %dx%d", rows, cols)
	}
	bounds := img.Bounds()
	cell := bounds.Dx() / cols
	if cell == 0 || cell*cols != bounds.Dx() || cell*rows != bounds.Dy() {
		return nil, fmt.Errorf("image %dx%d is not a %dx%d grid of square cells",
			bounds.Dx(), bounds.Dy(), cols, rows)
	}

	qr, qc := (rows+1)/2, (cols+1)/2
	rect := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+qc*cell, bounds.Min.Y+qr*cell)
	cropped := imaging.Crop(img, rect)

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

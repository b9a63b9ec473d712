package imaging

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCropQuadrant(t *testing.T) {
	img, err := RenderRaster(egg3x5(t), 64, DefaultPalette())
	if err != nil {
		t.Fatalf("RenderRaster failed: %v", err)
	}

	result, err := CropQuadrant(img, 3, 5, 1.0)
	if err != nil {
		t.Fatalf("CropQuadrant failed: %v", err)
	}
	if result.Width != 192 || result.Height != 128 {
		t.Errorf("dimensions: got %dx%d, want 192x128", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	quadrant, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}

	got, err := DecodeLayout(quadrant, 2, 3, DefaultPalette())
	if err != nil {
		t.Fatalf("DecodeLayout failed: %v", err)
	}
	if diff := cmp.Diff([]int{1, 1, 0, 1, 1, 1}, got.Ints()); diff != "" {
		t.Errorf("quadrant cells mismatch (-want +got):\n%s", diff)
	}
}

func TestCropQuadrant_WithScale(t *testing.T) {
	img, _ := RenderRaster(egg3x5(t), 32, DefaultPalette())

	result, err := CropQuadrant(img, 3, 5, 2.0)
	if err != nil {
		t.Fatalf("CropQuadrant failed: %v", err)
	}
	if result.Width != 192 || result.Height != 128 {
		t.Errorf("scaled dimensions: got %dx%d, want 192x128", result.Width, result.Height)
	}
}

func TestCropQuadrant_Invalid(t *testing.T) {
	img, _ := RenderRaster(egg3x5(t), 32, DefaultPalette())

	if _, err := CropQuadrant(img, 3, 4, 1.0); err == nil {
		t.Error("mismatched grid should fail")
	}
	if _, err := CropQuadrant(img, 0, 5, 1.0); err == nil {
		t.Error("zero rows should fail")
	}
}

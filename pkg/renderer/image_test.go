package renderer

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/df07/go-raycaster/pkg/core"
)

func TestImage_FillAndSet(t *testing.T) {
	fill := core.NewColor(10, 20, 30)
	img := NewImage(3, 2, fill)

	if len(img.Pixels) != 6 {
		t.Fatalf("Expected 6 pixels, got %d", len(img.Pixels))
	}
	for i, p := range img.Pixels {
		if p != fill {
			t.Errorf("Pixel %d = %v, want fill", i, p)
		}
	}

	img.SetPixel(2, 1, core.White)
	if img.Pixel(2, 1) != core.White || img.Pixels[5] != core.White {
		t.Error("SetPixel should write row-major")
	}
}

func TestImage_ImplementsImage(t *testing.T) {
	img := NewImage(2, 2, core.Black)
	img.SetPixel(1, 0, core.NewColor(255, 0, 0))

	var _ image.Image = img
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Unexpected bounds %v", img.Bounds())
	}
	if img.At(1, 0) != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("Unexpected At(1, 0) = %v", img.At(1, 0))
	}
	if img.At(5, 5) != (color.RGBA{}) {
		t.Errorf("Out of bounds At should be transparent, got %v", img.At(5, 5))
	}

	// The standard encoders accept the buffer directly
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
}

func TestImage_ToRGBA(t *testing.T) {
	img := NewImage(2, 1, core.NewColor(1, 2, 3))
	img.SetPixel(1, 0, core.White)

	rgba := img.ToRGBA()
	if rgba.RGBAAt(0, 0) != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("Unexpected pixel %v", rgba.RGBAAt(0, 0))
	}
	if rgba.RGBAAt(1, 0) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Unexpected pixel %v", rgba.RGBAAt(1, 0))
	}
}

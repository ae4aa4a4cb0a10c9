package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-raycaster/pkg/core"
)

// Image is a fixed-size, row-major colour buffer. Row 0 is the top of the
// picture. Distinct pixels may be written concurrently.
type Image struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewImage allocates a width x height image filled with fill
func NewImage(width, height int, fill core.Color) *Image {
	pixels := make([]core.Color, width*height)
	for i := range pixels {
		pixels[i] = fill
	}
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// Pixel returns the colour at column x, row y
func (img *Image) Pixel(x, y int) core.Color {
	return img.Pixels[y*img.Width+x]
}

// SetPixel stores the colour at column x, row y
func (img *Image) SetPixel(x, y int, c core.Color) {
	img.Pixels[y*img.Width+x] = c
}

// ColorModel implements image.Image
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements image.Image
func (img *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(img.Bounds())) {
		return color.RGBA{}
	}
	return img.Pixel(x, y).RGBA()
}

// ToRGBA copies the buffer into an *image.RGBA
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(img.Bounds())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			rgba.SetRGBA(x, y, img.Pixel(x, y).RGBA())
		}
	}
	return rgba
}

package core

import (
	"image/color"
	"math"
)

// Color is an 8-bit per channel RGB colour
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// NewColorFromFloats truncates each channel into [0, 255]
func NewColorFromFloats(r, g, b float64) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Add returns the channel-wise sum, saturating at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: saturatingAdd(c.R, other.R),
		G: saturatingAdd(c.G, other.G),
		B: saturatingAdd(c.B, other.B),
	}
}

// Mul attenuates c by other: each channel becomes a*b/255.
// White is the identity and black absorbs everything.
func (c Color) Mul(other Color) Color {
	return Color{
		R: uint8(float64(c.R) * float64(other.R) / 255.0),
		G: uint8(float64(c.G) * float64(other.G) / 255.0),
		B: uint8(float64(c.B) * float64(other.B) / 255.0),
	}
}

// Scale multiplies every channel by s, truncating and clamping to [0, 255]
func (c Color) Scale(s float64) Color {
	return Color{
		R: clampChannel(float64(c.R) * s),
		G: clampChannel(float64(c.G) * s),
		B: clampChannel(float64(c.B) * s),
	}
}

// RGBA converts the colour to an opaque color.RGBA
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func saturatingAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(sum)
}

// clampChannel truncates v into a channel value. NaN maps to 0.
func clampChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}

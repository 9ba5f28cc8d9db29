package filtra

import (
	"image/color"
	"math"
)

// Color represents an RGB color with each channel in the range [0, 1].
// Filters operate on Color values directly; conversion to and from 8-bit
// channel depth happens only at the codec boundary.
type Color struct {
	R, G, B float64
}

// RGB creates a color from RGB components.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray creates a color with all three channels set to v.
func Gray(v float64) Color {
	return Color{R: v, G: v, B: v}
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// Luminance returns the weighted grayscale intensity of the color,
// 0.299*R + 0.587*G + 0.114*B.
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// Clamp returns the color with every channel clamped to [0, 1].
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

// Add returns the channel-wise sum c + o. The result is not clamped.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns the channel-wise difference c - o. The result is not clamped.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Scale returns the color with every channel multiplied by s.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Lerp linearly interpolates between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// Color converts to the standard color.Color interface (opaque).
func (c Color) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: 255,
	}
}

// FromColor converts a standard color.Color to Color, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RRGGBB", with or without a leading '#'.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Black
	}

	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// parseHex parses a hex substring into a uint32.
func parseHex(s string, v *uint32) {
	*v = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*v <<= 4
		switch {
		case c >= '0' && c <= '9':
			*v |= uint32(c - '0')
		case c >= 'a' && c <= 'f':
			*v |= uint32(c-'a') + 10
		case c >= 'A' && c <= 'F':
			*v |= uint32(c-'A') + 10
		}
	}
}

// clamp01 clamps v to [0, 1]. NaN maps to 0 so that no filter can store an
// undefined channel value.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clamp255 clamps v to [0, 255].
func clamp255(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

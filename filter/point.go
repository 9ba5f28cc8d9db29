package filter

import (
	"math"

	"github.com/filtra/filtra"
)

// Channel identifies one color component of a pixel.
type Channel int

// Color channels.
const (
	ChannelR Channel = iota
	ChannelG
	ChannelB
)

// String returns the channel name.
func (ch Channel) String() string {
	switch ch {
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	}
	return "?"
}

// KeepChannel zeroes every channel of every pixel except ch.
func KeepChannel(img *filtra.Image, ch Channel) {
	pix := img.Pix()
	for i, c := range pix {
		switch ch {
		case ChannelR:
			pix[i] = filtra.Color{R: c.R}
		case ChannelG:
			pix[i] = filtra.Color{G: c.G}
		case ChannelB:
			pix[i] = filtra.Color{B: c.B}
		}
	}
}

// SwapChannels exchanges channels a and b in every pixel.
func SwapChannels(img *filtra.Image, a, b Channel) {
	if a == b {
		return
	}
	pix := img.Pix()
	for i := range pix {
		va := channelValue(pix[i], a)
		vb := channelValue(pix[i], b)
		setChannel(&pix[i], a, vb)
		setChannel(&pix[i], b, va)
	}
}

func channelValue(c filtra.Color, ch Channel) float64 {
	switch ch {
	case ChannelR:
		return c.R
	case ChannelG:
		return c.G
	}
	return c.B
}

func setChannel(c *filtra.Color, ch Channel, v float64) {
	switch ch {
	case ChannelR:
		c.R = v
	case ChannelG:
		c.G = v
	case ChannelB:
		c.B = v
	}
}

// Grayscale converts the image to grayscale using the luminance formula
// 0.299*R + 0.587*G + 0.114*B.
func Grayscale(img *filtra.Image) {
	pix := img.Pix()
	for i := range pix {
		pix[i] = filtra.Gray(pix[i].Luminance())
	}
}

// Negative inverts every channel: v becomes 1 - v. Channels are already in
// [0, 1], so the result needs no clamping.
func Negative(img *filtra.Image) {
	pix := img.Pix()
	for i, c := range pix {
		pix[i] = filtra.Color{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B}
	}
}

// Curve selects a brightness remapping curve.
type Curve int

// Brightness curves.
const (
	// CurveDarker squares each channel, pushing values toward black.
	CurveDarker Curve = iota

	// CurveBrighter takes the square root of each channel, pushing values
	// toward white.
	CurveBrighter
)

// Brightness remaps every channel through the given curve. Both curves map
// [0, 1] into [0, 1], and the output is clamped so rounding can never leave
// the valid range.
func Brightness(img *filtra.Image, curve Curve) {
	pix := img.Pix()
	for i, c := range pix {
		switch curve {
		case CurveDarker:
			pix[i] = filtra.Color{R: c.R * c.R, G: c.G * c.G, B: c.B * c.B}
		case CurveBrighter:
			pix[i] = filtra.Color{
				R: math.Sqrt(c.R),
				G: math.Sqrt(c.G),
				B: math.Sqrt(c.B),
			}
		}
		pix[i] = pix[i].Clamp()
	}
}

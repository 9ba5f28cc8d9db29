package filter

import (
	"github.com/filtra/filtra"
)

// Axis selects a mirror direction.
type Axis int

// Mirror axes.
const (
	// Horizontal mirrors across the vertical center line: (x, y) swaps with
	// (w-1-x, y).
	Horizontal Axis = iota

	// Vertical mirrors across the horizontal center line: (x, y) swaps with
	// (x, h-1-y).
	Vertical

	// Both mirrors across both axes, equivalent to a 180° rotation.
	Both
)

// Mirror reflects the image across the given axis in place. Every swap
// settles two pixels, so each axis traverses only the half of the image
// that pairs with the other half; traversing the same half-width for all
// three axes would swap vertical pairs twice and undo itself.
func Mirror(img *filtra.Image, axis Axis) {
	w := img.Width()
	h := img.Height()

	swap := func(x, y, mx, my int) {
		a := img.At(x, y)
		img.Set(x, y, img.At(mx, my))
		img.Set(mx, my, a)
	}

	switch axis {
	case Horizontal:
		for y := 0; y < h; y++ {
			for x := 0; x < w/2; x++ {
				swap(x, y, w-1-x, y)
			}
		}
	case Vertical:
		for y := 0; y < h/2; y++ {
			for x := 0; x < w; x++ {
				swap(x, y, x, h-1-y)
			}
		}
	case Both:
		// Equivalent to a 180° rotation: pair rows top/bottom, and for an
		// odd height split the middle row around its center pixel.
		for y := 0; y < h/2; y++ {
			for x := 0; x < w; x++ {
				swap(x, y, w-1-x, h-1-y)
			}
		}
		if h%2 == 1 {
			mid := h / 2
			for x := 0; x < w/2; x++ {
				swap(x, mid, w-1-x, mid)
			}
		}
	}
}

// Rotate90 rotates the image 90° clockwise. The pixel at (x, y) moves to
// (h-1-y, x) in a fresh h×w buffer, which then replaces the original.
func Rotate90(img *filtra.Image) {
	w := img.Width()
	h := img.Height()

	rotated, err := filtra.NewImage(h, w)
	if err != nil {
		// Unreachable: img has valid dimensions.
		return
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rotated.Set(h-1-y, x, img.At(x, y))
		}
	}

	img.Swap(rotated)
}

// DefaultSplitOffset is the channel displacement used by the demo binary.
const DefaultSplitOffset = 25

// SplitRGB displaces the red channel offset pixels to the left and the blue
// channel offset pixels to the right, keeping green in place. Samples past
// the image edge clamp to the nearest column. Reads come from the original
// buffer; the result is swapped in.
func SplitRGB(img *filtra.Image, offset int) {
	if offset < 0 {
		offset = -offset
	}
	w := img.Width()
	h := img.Height()

	out, err := filtra.NewImage(w, h)
	if err != nil {
		return
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r := img.AtClamped(x-offset, y).R
			g := img.At(x, y).G
			b := img.AtClamped(x+offset, y).B
			out.Set(x, y, filtra.Color{R: r, G: g, B: b})
		}
	}

	img.Swap(out)
}

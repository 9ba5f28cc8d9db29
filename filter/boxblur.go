package filter

import (
	"fmt"

	"github.com/filtra/filtra"
)

// BoxBlur replaces every pixel with the arithmetic mean of a k×k window
// around it. k may be odd or even; k == 1 (or 0) is the identity no-op and
// negative k is an error.
//
// The blur runs as two separable linear passes. The horizontal pass writes
// row means into an intermediate buffer; the vertical pass reads that buffer
// and writes column means into the destination, which is then swapped into
// img. Within a pass the window mean is maintained as a sliding running sum:
// each step adds the sample entering the window and removes the one leaving
// it, so total work is O(w·h) regardless of k.
//
// Window samples past the image edge clamp to the nearest valid coordinate
// (edge replication). With k even the window extends one pixel further
// toward the bottom-right: it spans [i-(k-1)/2, i+k/2].
func BoxBlur(img *filtra.Image, k int) error {
	if k < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidKernelSize, k)
	}
	if k <= 1 {
		return nil
	}

	w := img.Width()
	h := img.Height()

	tmp, err := filtra.NewImage(w, h)
	if err != nil {
		return err
	}
	dst, err := filtra.NewImage(w, h)
	if err != nil {
		return err
	}

	filtra.Logger().Debug("box blur", "size", k, "width", w, "height", h)

	left := (k - 1) / 2
	right := k / 2
	inv := 1.0 / float64(k)

	// Horizontal pass: img -> tmp.
	for y := 0; y < h; y++ {
		var sum filtra.Color
		for i := -left; i <= right; i++ {
			sum = sum.Add(img.AtClamped(i, y))
		}
		tmp.Set(0, y, sum.Scale(inv))

		for x := 1; x < w; x++ {
			sum = sum.Add(img.AtClamped(x+right, y))
			sum = sum.Sub(img.AtClamped(x-1-left, y))
			tmp.Set(x, y, sum.Scale(inv))
		}
	}

	// Vertical pass: tmp -> dst.
	for x := 0; x < w; x++ {
		var sum filtra.Color
		for i := -left; i <= right; i++ {
			sum = sum.Add(tmp.AtClamped(x, i))
		}
		dst.Set(x, 0, sum.Scale(inv))

		for y := 1; y < h; y++ {
			sum = sum.Add(tmp.AtClamped(x, y+right))
			sum = sum.Sub(tmp.AtClamped(x, y-1-left))
			dst.Set(x, y, sum.Scale(inv))
		}
	}

	img.Swap(dst)
	return nil
}

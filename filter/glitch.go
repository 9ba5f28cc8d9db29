package filter

import (
	"math/rand/v2"

	"github.com/filtra/filtra"
)

// Glitch copies n random rectangular blocks of the image to random nearby
// positions, producing a corrupted-transmission look. Blocks are read from a
// frozen snapshot so overlapping copies never read half-written data.
// Non-positive n is a no-op.
func Glitch(img *filtra.Image, rng *rand.Rand, n int) {
	if n <= 0 {
		return
	}
	w := img.Width()
	h := img.Height()
	src := img.Clone()

	filtra.Logger().Debug("glitch", "blocks", n, "width", w, "height", h)

	for i := 0; i < n; i++ {
		bw := 1 + rng.IntN(maxInt(w/8, 1))
		bh := 1 + rng.IntN(maxInt(h/32, 1))
		sx := rng.IntN(w)
		sy := rng.IntN(h)

		// Destination stays within a quarter-image of the source, so the
		// effect reads as displacement rather than shuffling.
		dx := sx + rng.IntN(w/4+1) - w/8
		dy := sy + rng.IntN(h/4+1) - h/8

		for by := 0; by < bh; by++ {
			for bx := 0; bx < bw; bx++ {
				tx, ty := dx+bx, dy+by
				if !img.In(tx, ty) {
					continue
				}
				img.Set(tx, ty, src.AtClamped(sx+bx, sy+by))
			}
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package filter

import (
	"math/rand/v2"
	"sort"

	"github.com/filtra/filtra"
)

// PixelSort sorts the pixels of random horizontal spans by luminance,
// darkest first. spans is the number of spans to sort; non-positive is a
// no-op. Span length is random up to half the image width.
func PixelSort(img *filtra.Image, rng *rand.Rand, spans int) {
	if spans <= 0 {
		return
	}
	w := img.Width()
	h := img.Height()
	pix := img.Pix()

	for i := 0; i < spans; i++ {
		y := rng.IntN(h)
		start := rng.IntN(w)
		length := 1 + rng.IntN(maxInt(w/2, 1))
		end := start + length
		if end > w {
			end = w
		}

		row := pix[y*w+start : y*w+end]
		sort.Slice(row, func(a, b int) bool {
			return row[a].Luminance() < row[b].Luminance()
		})
	}
}

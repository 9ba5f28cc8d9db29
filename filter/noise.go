package filter

import (
	"math/rand/v2"

	"github.com/filtra/filtra"
)

// NoiseRate is the fraction of pixels Noise replaces, about one in six.
const NoiseRate = 6

// Noise replaces roughly one pixel in six with a uniformly random color.
// The caller supplies the random source so runs are reproducible.
func Noise(img *filtra.Image, rng *rand.Rand) {
	pix := img.Pix()
	for i := range pix {
		if rng.IntN(NoiseRate) == 0 {
			pix[i] = filtra.Color{
				R: rng.Float64(),
				G: rng.Float64(),
				B: rng.Float64(),
			}
		}
	}
}

package filter

import (
	"fmt"

	"github.com/filtra/filtra"
)

// DoGThreshold is the edge-highlight threshold: any channel of the blur
// difference above it saturates to full intensity.
const DoGThreshold = 0.03

// DifferenceOfGaussians subtracts two box-blurred copies of the image to
// highlight edges. small and large are the two blur window sizes; small
// must not exceed large.
//
// Per channel the output is clamp(blurSmall - blurLarge, 0, 1), except that
// a raw difference above DoGThreshold snaps straight to 1.0. The snap is
// deliberate: it exaggerates detected edges instead of leaving a faint
// gradient, and a plain clamp does not reproduce the effect.
func DifferenceOfGaussians(img *filtra.Image, small, large int) error {
	if small < 0 || large < 0 || small > large {
		return fmt.Errorf("%w: blur sizes %d, %d", ErrInvalidKernelSize, small, large)
	}

	blurSmall := img.Clone()
	if err := BoxBlur(blurSmall, small); err != nil {
		return err
	}
	blurLarge := img.Clone()
	if err := BoxBlur(blurLarge, large); err != nil {
		return err
	}

	pix := img.Pix()
	sp := blurSmall.Pix()
	lp := blurLarge.Pix()
	for i := range pix {
		d := sp[i].Sub(lp[i])
		pix[i] = filtra.Color{
			R: snapOrClamp(d.R),
			G: snapOrClamp(d.G),
			B: snapOrClamp(d.B),
		}
	}
	return nil
}

// snapOrClamp saturates differences above the threshold and clamps the rest.
func snapOrClamp(d float64) float64 {
	if d > DoGThreshold {
		return 1
	}
	if d < 0 {
		return 0
	}
	return d
}

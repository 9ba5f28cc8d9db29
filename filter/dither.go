package filter

import (
	"github.com/filtra/filtra"
)

// bayer4 is the 4x4 Bayer threshold matrix, normalized to (0, 1) by the
// 1/16 step with a half-step offset.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// OrderedDither reduces the image to pure black and white using ordered
// (Bayer) dithering: each pixel's luminance is compared against the 4x4
// threshold matrix tiled over the image. Output pixels are exactly black or
// white, so the [0, 1] invariant holds by construction.
func OrderedDither(img *filtra.Image) {
	w := img.Width()
	h := img.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			threshold := (bayer4[y%4][x%4] + 0.5) / 16
			if img.At(x, y).Luminance() > threshold {
				img.Set(x, y, filtra.White)
			} else {
				img.Set(x, y, filtra.Black)
			}
		}
	}
}

package filter

import (
	"github.com/filtra/filtra"
)

// Convolve applies a fixed 3x3 kernel to every interior pixel. Each interior
// pixel becomes the weighted sum of its 3x3 neighborhood read from a frozen
// snapshot of the source, so later pixels never see already-convolved
// neighbors. The 1-pixel border is left unmodified. Kernels whose weights
// sum past 1 (sharpen, edge detect) can overshoot, so the result is clamped.
func Convolve(img *filtra.Image, k Kernel) {
	w := img.Width()
	h := img.Height()
	if w < 3 || h < 3 {
		return
	}

	src := img.Clone()

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var r, g, b float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					weight := k[(ky+1)*3+(kx+1)]
					c := src.At(x+kx, y+ky)
					r += c.R * weight
					g += c.G * weight
					b += c.B * weight
				}
			}
			img.Set(x, y, filtra.Color{R: r, G: g, B: b}.Clamp())
		}
	}
}

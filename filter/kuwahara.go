package filter

import (
	"fmt"

	"github.com/filtra/filtra"
)

// Kuwahara applies an edge-preserving smoothing filter. For each pixel the
// (2·radius+1)² neighborhood is split into four overlapping quadrants
// anchored at the center pixel; the pixel takes the mean color of the
// quadrant whose luminance variance is lowest. Ties resolve in enumeration
// order: top-left, top-right, bottom-left, bottom-right.
//
// Out-of-bounds samples clamp to the image edge. Reads come from a frozen
// snapshot of the source, never the buffer being written. radius < 0 is an
// error; radius == 0 is the identity.
func Kuwahara(img *filtra.Image, radius int) error {
	if radius < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	if radius == 0 {
		return nil
	}

	w := img.Width()
	h := img.Height()
	src := img.Clone()

	filtra.Logger().Debug("kuwahara", "radius", radius, "width", w, "height", h)

	// Each quadrant spans [x0, x1]×[y0, y1] relative to the center pixel;
	// all four include the center row and column, so they overlap.
	quadrants := [4][4]int{
		{-radius, 0, -radius, 0}, // top-left
		{0, radius, -radius, 0},  // top-right
		{-radius, 0, 0, radius},  // bottom-left
		{0, radius, 0, radius},   // bottom-right
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best := filtra.Color{}
			bestVar := -1.0

			for _, q := range quadrants {
				mean, variance := quadrantStats(src, x, y, q)
				if bestVar < 0 || variance < bestVar {
					bestVar = variance
					best = mean
				}
			}

			img.Set(x, y, best)
		}
	}
	return nil
}

// quadrantStats returns the mean color of the quadrant and the variance of
// its luminance. q holds {x0, x1, y0, y1} offsets from the center pixel.
func quadrantStats(src *filtra.Image, cx, cy int, q [4]int) (filtra.Color, float64) {
	var sum filtra.Color
	var lumSum, lumSqSum float64
	n := 0

	for dy := q[2]; dy <= q[3]; dy++ {
		for dx := q[0]; dx <= q[1]; dx++ {
			c := src.AtClamped(cx+dx, cy+dy)
			sum = sum.Add(c)
			lum := c.Luminance()
			lumSum += lum
			lumSqSum += lum * lum
			n++
		}
	}

	inv := 1.0 / float64(n)
	mean := sum.Scale(inv)
	lumMean := lumSum * inv
	variance := lumSqSum*inv - lumMean*lumMean
	return mean, variance
}

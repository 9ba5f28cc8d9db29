// Package draw renders procedural shapes and gradients into filtra images
// and exports animation frames to disk.
package draw

import (
	"math"

	"github.com/filtra/filtra"
)

// Gradient fills the image with a horizontal gradient from black at the
// left edge to white at the right edge.
func Gradient(img *filtra.Image) {
	w := img.Width()
	h := img.Height()
	for x := 0; x < w; x++ {
		c := filtra.Gray(float64(x) / float64(w))
		for y := 0; y < h; y++ {
			img.Set(x, y, c)
		}
	}
}

// Disc draws a filled circle of radius r centered on (cx, cy). Pixels whose
// center lies within r of the disc center are painted; the rest are left
// untouched.
func Disc(img *filtra.Image, cx, cy, r float64, c filtra.Color) {
	forEachInBand(img, cx, cy, r, func(x, y int, dist float64) {
		if dist <= r {
			img.Set(x, y, c)
		}
	})
}

// Ring draws a circle outline of radius r and the given stroke thickness
// centered on (cx, cy).
func Ring(img *filtra.Image, cx, cy, r, thickness float64, c filtra.Color) {
	half := thickness / 2
	forEachInBand(img, cx, cy, r+half, func(x, y int, dist float64) {
		if dist >= r-half && dist <= r+half {
			img.Set(x, y, c)
		}
	})
}

// Rosette draws n rings evenly spaced on a circle of radius r around
// (cx, cy). Each ring has radius ringR.
func Rosette(img *filtra.Image, cx, cy, r float64, n int, ringR, thickness float64, c filtra.Color) {
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		px := cx + r*math.Cos(a)
		py := cy + r*math.Sin(a)
		Ring(img, px, py, ringR, thickness, c)
	}
}

// forEachInBand visits every pixel within the bounding square of a circle
// of radius r around (cx, cy), passing its distance from the center. The
// bounding square keeps shape drawing proportional to the shape, not the
// image.
func forEachInBand(img *filtra.Image, cx, cy, r float64, fn func(x, y int, dist float64)) {
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !img.In(x, y) {
				continue
			}
			dx := float64(x) - cx
			dy := float64(y) - cy
			fn(x, y, math.Hypot(dx, dy))
		}
	}
}

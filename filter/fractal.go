package filter

import (
	"math"
	"math/cmplx"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/filtra/filtra"
)

// FractalOptions configures the Mandelbrot renderer.
type FractalOptions struct {
	// CenterX, CenterY is the complex-plane point mapped to the image center.
	CenterX, CenterY float64

	// Scale is the width of the rendered complex-plane window.
	Scale float64

	// MaxIter bounds the escape iteration count.
	MaxIter int
}

// DefaultFractalOptions frames the full Mandelbrot set.
func DefaultFractalOptions() FractalOptions {
	return FractalOptions{
		CenterX: -0.65,
		CenterY: 0,
		Scale:   3.0,
		MaxIter: 96,
	}
}

// Fractal renders the Mandelbrot set into the image, replacing its contents.
// Points inside the set are black; escaping points are colored through an
// HSV sweep keyed on a smoothed iteration count, so the bands blend instead
// of stepping.
func Fractal(img *filtra.Image, opts FractalOptions) {
	w := img.Width()
	h := img.Height()
	if opts.Scale <= 0 {
		opts.Scale = 3.0
	}
	if opts.MaxIter <= 0 {
		opts.MaxIter = 96
	}

	// Preserve the aspect ratio: the window height follows from the width.
	scaleY := opts.Scale * float64(h) / float64(w)

	filtra.Logger().Debug("fractal",
		"center_x", opts.CenterX, "center_y", opts.CenterY,
		"scale", opts.Scale, "max_iter", opts.MaxIter)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			re := opts.CenterX + (float64(x)/float64(w)-0.5)*opts.Scale
			im := opts.CenterY + (float64(y)/float64(h)-0.5)*scaleY

			img.Set(x, y, mandelbrotColor(complex(re, im), opts.MaxIter))
		}
	}
}

// mandelbrotColor iterates z = z² + c and maps the escape speed to a color.
func mandelbrotColor(c complex128, maxIter int) filtra.Color {
	var z complex128
	for i := 0; i < maxIter; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			// Smooth (fractional) escape count avoids hard color bands.
			smooth := float64(i) + 1 - math.Log2(math.Log(cmplx.Abs(z)))
			hue := math.Mod(smooth*9, 360)
			if hue < 0 {
				hue += 360
			}
			r, g, b := colorful.Hsv(hue, 0.75, 1).RGB255()
			return filtra.Color{
				R: float64(r) / 255,
				G: float64(g) / 255,
				B: float64(b) / 255,
			}
		}
	}
	return filtra.Black
}

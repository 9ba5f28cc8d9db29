package filter

import (
	"fmt"

	"github.com/filtra/filtra"
)

// Pixelate replaces each cell×cell block with its average color. Blocks at
// the right and bottom edges may be smaller than cell; they average only the
// pixels they cover. cell <= 0 is an error; cell == 1 is the identity.
func Pixelate(img *filtra.Image, cell int) error {
	if cell <= 0 {
		return fmt.Errorf("%w: cell %d", ErrInvalidKernelSize, cell)
	}
	if cell == 1 {
		return nil
	}

	w := img.Width()
	h := img.Height()

	for by := 0; by < h; by += cell {
		for bx := 0; bx < w; bx += cell {
			x1 := minInt(bx+cell, w)
			y1 := minInt(by+cell, h)

			var sum filtra.Color
			n := 0
			for y := by; y < y1; y++ {
				for x := bx; x < x1; x++ {
					sum = sum.Add(img.At(x, y))
					n++
				}
			}
			mean := sum.Scale(1 / float64(n))

			for y := by; y < y1; y++ {
				for x := bx; x < x1; x++ {
					img.Set(x, y, mean)
				}
			}
		}
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

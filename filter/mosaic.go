package filter

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/filtra/filtra"
)

// Mosaic tiles the image with an n×n grid of shrunken copies of itself.
// Each tile is the source downscaled to (w/n)×(h/n) with a Lanczos
// resampling filter. n <= 0 is an error; n == 1 is the identity.
func Mosaic(img *filtra.Image, n int) error {
	return mosaic(img, n, false)
}

// MosaicMirror is Mosaic with alternate tiles flipped so adjacent tiles
// meet edge-to-edge: tiles in odd columns are flipped horizontally, tiles
// in odd rows vertically.
func MosaicMirror(img *filtra.Image, n int) error {
	return mosaic(img, n, true)
}

func mosaic(img *filtra.Image, n int, mirror bool) error {
	if n <= 0 {
		return fmt.Errorf("%w: grid %d", ErrInvalidKernelSize, n)
	}
	if n == 1 {
		return nil
	}

	w := img.Width()
	h := img.Height()
	tw := w / n
	th := h / n
	if tw == 0 || th == 0 {
		return fmt.Errorf("%w: grid %d too fine for %dx%d image",
			ErrInvalidKernelSize, n, w, h)
	}

	tile := filtra.FromStdImage(imaging.Resize(img.ToStdImage(), tw, th, imaging.Lanczos))

	out, err := filtra.NewImage(w, h)
	if err != nil {
		return err
	}

	for ty := 0; ty < n; ty++ {
		for tx := 0; tx < n; tx++ {
			flipX := mirror && tx%2 == 1
			flipY := mirror && ty%2 == 1
			for y := 0; y < th; y++ {
				for x := 0; x < tw; x++ {
					sx, sy := x, y
					if flipX {
						sx = tw - 1 - x
					}
					if flipY {
						sy = th - 1 - y
					}
					out.Set(tx*tw+x, ty*th+y, tile.At(sx, sy))
				}
			}
		}
	}

	// The grid may not divide the image evenly; fill the remainder strips
	// by repeating the nearest tile edge.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < n*tw && y < n*th {
				continue
			}
			out.Set(x, y, out.AtClamped(minInt(x, n*tw-1), minInt(y, n*th-1)))
		}
	}

	img.Swap(out)
	return nil
}

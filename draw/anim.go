package draw

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/filtra/filtra"
)

// FrameFunc renders one animation frame. t runs from 0 on the first frame
// to 1 on the last.
type FrameFunc func(img *filtra.Image, frame int, t float64)

// ExportAnimation renders frames images of the given size and writes them to
// dir as frame_000.png, frame_001.png, and so on. Each frame is produced by
// fn on a fresh black canvas and stamped with a small frame counter in the
// top-left corner. The directory is created if it does not exist.
func ExportAnimation(dir string, width, height, frames int, fn FrameFunc) error {
	if frames <= 0 {
		return fmt.Errorf("draw: frame count %d out of range", frames)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("draw: create frame directory: %w", err)
	}

	for i := 0; i < frames; i++ {
		img, err := filtra.NewImage(width, height)
		if err != nil {
			return err
		}

		t := 0.0
		if frames > 1 {
			t = float64(i) / float64(frames-1)
		}
		fn(img, i, t)

		stampLabel(img, fmt.Sprintf("%03d", i))

		path := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i))
		if err := img.Save(path); err != nil {
			return err
		}
	}

	filtra.Logger().Info("animation exported", "dir", dir, "frames", frames)
	return nil
}

// SweepingDisc is the stock animation: a disc crossing the canvas left to
// right along the vertical center line.
func SweepingDisc(radius float64, c filtra.Color) FrameFunc {
	return func(img *filtra.Image, _ int, t float64) {
		w := float64(img.Width())
		h := float64(img.Height())
		// The disc starts fully off-canvas and exits fully off-canvas.
		span := w + 2*(radius+1)
		cx := -(radius + 1) + t*span
		Disc(img, cx, h/2, radius, c)
	}
}

// stampLabel draws text into the top-left corner using the fixed 7x13 face.
func stampLabel(img *filtra.Image, text string) {
	std := img.ToStdImage()

	d := font.Drawer{
		Dst:  std,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 14),
	}
	d.DrawString(text)

	labeled := filtra.FromStdImage(std)
	img.Swap(labeled)
}

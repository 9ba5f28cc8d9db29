// Package delta implements a differential (delta) channel encoding
// experiment: each pixel is stored as the channel-wise difference from the
// previous pixel in row-major order. Smooth images produce long runs of
// near-zero deltas, which both reads well in the CSV dump and packs far
// tighter through a general-purpose compressor than the raw samples do.
package delta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/filtra/filtra"
)

// Delta holds one pixel's channel differences. Values may be negative.
type Delta struct {
	R, G, B float64
}

// Encode returns the per-pixel channel deltas of img in row-major order.
// The first pixel has no predecessor and is encoded against black, so its
// delta equals its own value.
func Encode(img *filtra.Image) []Delta {
	pix := img.Pix()
	deltas := make([]Delta, len(pix))

	prev := filtra.Color{}
	for i, c := range pix {
		deltas[i] = Delta{R: c.R - prev.R, G: c.G - prev.G, B: c.B - prev.B}
		prev = c
	}
	return deltas
}

// Reconstruct inverts Encode, rebuilding a width×height image from deltas.
// len(deltas) must equal width*height.
func Reconstruct(deltas []Delta, width, height int) (*filtra.Image, error) {
	if len(deltas) != width*height {
		return nil, fmt.Errorf("delta: %d deltas for %dx%d image",
			len(deltas), width, height)
	}
	img, err := filtra.NewImage(width, height)
	if err != nil {
		return nil, err
	}

	pix := img.Pix()
	prev := filtra.Color{}
	for i, d := range deltas {
		prev = filtra.Color{R: prev.R + d.R, G: prev.G + d.G, B: prev.B + d.B}
		pix[i] = prev
	}
	return img, nil
}

// WriteCSV writes the deltas as comma-separated text: a header row "R,G,B"
// followed by one line per pixel with six decimal digits of precision.
func WriteCSV(w io.Writer, deltas []Delta) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "R,G,B"); err != nil {
		return fmt.Errorf("delta: write CSV: %w", err)
	}
	for _, d := range deltas {
		if _, err := fmt.Fprintf(bw, "%.6f,%.6f,%.6f\n", d.R, d.G, d.B); err != nil {
			return fmt.Errorf("delta: write CSV: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("delta: write CSV: %w", err)
	}
	return nil
}

// SaveCSV writes the deltas to a CSV file at path. A file-creation failure
// is recovered: it is logged as a warning and the write is skipped, so a
// bad auxiliary path never aborts a filter run.
func SaveCSV(path string, deltas []Delta) {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		filtra.Logger().Warn("delta CSV skipped", "path", path, "error", err)
		return
	}
	defer func() { _ = f.Close() }()

	if err := WriteCSV(f, deltas); err != nil {
		filtra.Logger().Warn("delta CSV incomplete", "path", path, "error", err)
	}
}

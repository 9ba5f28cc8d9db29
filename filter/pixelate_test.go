package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/filtra/filtra"
)

func TestPixelateInvalidCell(t *testing.T) {
	img, err := filtra.NewImage(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, cell := range []int{0, -3} {
		if err := Pixelate(img, cell); !errors.Is(err, ErrInvalidKernelSize) {
			t.Errorf("Pixelate(%d) error = %v, want ErrInvalidKernelSize", cell, err)
		}
	}
}

func TestPixelateCellOneIsIdentity(t *testing.T) {
	src := gradientImage(t, 5, 5)
	img := src.Clone()

	if err := Pixelate(img, 1); err != nil {
		t.Fatal(err)
	}
	if !equalImages(img, src) {
		t.Error("cell size 1 changed the image")
	}
}

func TestPixelateBlockMean(t *testing.T) {
	// 2x2 blocks of known content: each block collapses to its mean.
	img, err := filtra.NewImage(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	img.Set(0, 0, filtra.White)
	img.Set(1, 0, filtra.Black)
	img.Set(0, 1, filtra.White)
	img.Set(1, 1, filtra.Black)
	// Right block all red.
	for y := 0; y < 2; y++ {
		for x := 2; x < 4; x++ {
			img.Set(x, y, filtra.Red)
		}
	}

	if err := Pixelate(img, 2); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := img.At(x, y); math.Abs(got.R-0.5) > 1e-12 {
				t.Errorf("left block pixel (%d,%d) = %v, want mid gray", x, y, got)
			}
		}
		for x := 2; x < 4; x++ {
			got := img.At(x, y)
			if math.Abs(got.R-1) > 1e-12 || got.G > 1e-12 || got.B > 1e-12 {
				t.Errorf("right block pixel (%d,%d) = %v, want red", x, y, got)
			}
		}
	}
}

func TestPixelateRaggedEdge(t *testing.T) {
	// 5 wide with cell 2: the last column is its own 1-wide block and
	// averages only itself.
	img, err := filtra.NewUniform(5, 2, filtra.Gray(0.25))
	if err != nil {
		t.Fatal(err)
	}
	img.Set(4, 0, filtra.White)
	img.Set(4, 1, filtra.Black)

	if err := Pixelate(img, 2); err != nil {
		t.Fatal(err)
	}

	if got := img.At(4, 0); math.Abs(got.R-0.5) > 1e-12 {
		t.Errorf("edge block pixel = %v, want mean of its own column", got)
	}
}

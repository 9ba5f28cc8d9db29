package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/filtra/filtra"
)

func TestKuwaharaUniformUnchanged(t *testing.T) {
	c := filtra.Color{R: 0.2, G: 0.6, B: 0.4}
	img, err := filtra.NewUniform(7, 6, c)
	if err != nil {
		t.Fatal(err)
	}

	if err := Kuwahara(img, 3); err != nil {
		t.Fatal(err)
	}

	// All four quadrant means are identical on uniform input, so the
	// variance tie resolves to the first quadrant and the mean is c either
	// way.
	const tol = 1e-12
	for y := 0; y < 6; y++ {
		for x := 0; x < 7; x++ {
			got := img.At(x, y)
			if math.Abs(got.R-c.R) > tol ||
				math.Abs(got.G-c.G) > tol ||
				math.Abs(got.B-c.B) > tol {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, c)
			}
		}
	}
}

func TestKuwaharaPicksLowVarianceQuadrant(t *testing.T) {
	// Left half uniform gray, right half alternating black/white rows.
	// For a pixel at the seam, the left quadrants have zero luminance
	// variance and must win, so the output is the uniform gray.
	img, err := filtra.NewImage(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	grayVal := filtra.Gray(0.5)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			switch {
			case x < 4:
				img.Set(x, y, grayVal)
			case y%2 == 0:
				img.Set(x, y, filtra.White)
			default:
				img.Set(x, y, filtra.Black)
			}
		}
	}

	if err := Kuwahara(img, 2); err != nil {
		t.Fatal(err)
	}

	// (3, 4): both left quadrants lie entirely in the gray region.
	if got := img.At(3, 4); math.Abs(got.R-0.5) > 1e-12 {
		t.Errorf("seam pixel = %v, want uniform gray from low-variance quadrant", got)
	}
}

func TestKuwaharaRadiusZeroIsIdentity(t *testing.T) {
	img := checkerboard(t, 4, 4)
	want := img.Clone()

	if err := Kuwahara(img, 0); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.At(x, y) != want.At(x, y) {
				t.Fatalf("pixel (%d,%d) changed under radius 0", x, y)
			}
		}
	}
}

func TestKuwaharaNegativeRadius(t *testing.T) {
	img, err := filtra.NewImage(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := Kuwahara(img, -2); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("Kuwahara(-2) error = %v, want ErrInvalidRadius", err)
	}
}

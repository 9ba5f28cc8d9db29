package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/filtra/filtra"
)

const blurTol = 1e-9

func TestBoxBlurNegativeSize(t *testing.T) {
	img, err := filtra.NewImage(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := BoxBlur(img, -1); !errors.Is(err, ErrInvalidKernelSize) {
		t.Errorf("BoxBlur(-1) error = %v, want ErrInvalidKernelSize", err)
	}
}

func TestBoxBlurSizeOneIsIdentity(t *testing.T) {
	img := checkerboard(t, 5, 4)
	want := img.Clone()

	for _, k := range []int{0, 1} {
		if err := BoxBlur(img, k); err != nil {
			t.Fatalf("BoxBlur(%d): %v", k, err)
		}
		for y := 0; y < img.Height(); y++ {
			for x := 0; x < img.Width(); x++ {
				if img.At(x, y) != want.At(x, y) {
					t.Fatalf("k=%d pixel (%d,%d) = %v, want %v (identity)",
						k, x, y, img.At(x, y), want.At(x, y))
				}
			}
		}
	}
}

func TestBoxBlurPreservesUniform(t *testing.T) {
	c := filtra.Color{R: 0.3, G: 0.6, B: 0.9}

	for _, k := range []int{2, 3, 7, 16} {
		img, err := filtra.NewUniform(6, 5, c)
		if err != nil {
			t.Fatal(err)
		}
		if err := BoxBlur(img, k); err != nil {
			t.Fatalf("BoxBlur(%d): %v", k, err)
		}

		for y := 0; y < img.Height(); y++ {
			for x := 0; x < img.Width(); x++ {
				got := img.At(x, y)
				if math.Abs(got.R-c.R) > blurTol ||
					math.Abs(got.G-c.G) > blurTol ||
					math.Abs(got.B-c.B) > blurTol {
					t.Fatalf("k=%d pixel (%d,%d) = %v, want uniform %v", k, x, y, got, c)
				}
			}
		}
	}
}

func TestBoxBlurAllBlackStaysBlack(t *testing.T) {
	img, err := filtra.NewImage(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := BoxBlur(img, 3); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := img.At(x, y); got != filtra.Black {
				t.Fatalf("pixel (%d,%d) = %v, want black", x, y, got)
			}
		}
	}
}

// TestBoxBlurSingleWhitePixel locks down the edge-replication policy: on a
// 4x4 black image with one white pixel at (1,1), every pixel whose clamped
// 3x3 window contains (1,1) exactly once averages to 1/9, and no window
// contains it more than once.
func TestBoxBlurSingleWhitePixel(t *testing.T) {
	img, err := filtra.NewImage(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	img.Set(1, 1, filtra.White)

	if err := BoxBlur(img, 3); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := 0.0
			if x <= 2 && y <= 2 {
				want = 1.0 / 9
			}
			got := img.At(x, y)
			if math.Abs(got.R-want) > blurTol ||
				math.Abs(got.G-want) > blurTol ||
				math.Abs(got.B-want) > blurTol {
				t.Errorf("pixel (%d,%d) = %v, want gray %v", x, y, got, want)
			}
		}
	}
}

// TestBoxBlurEvenSize checks the window anchoring for an even kernel: the
// window spans one pixel further toward the bottom-right.
func TestBoxBlurEvenSize(t *testing.T) {
	// 1x4 row: white at x=2, k=2, window [x, x+1].
	img, err := filtra.NewImage(4, 1)
	if err != nil {
		t.Fatal(err)
	}
	img.Set(2, 0, filtra.White)

	if err := BoxBlur(img, 2); err != nil {
		t.Fatal(err)
	}

	// Vertical pass over height 1 is the identity (all clamped samples are
	// the same pixel), so only the horizontal window matters here.
	wants := []float64{0, 0.5, 0.5, 0}
	for x, want := range wants {
		if got := img.At(x, 0).R; math.Abs(got-want) > blurTol {
			t.Errorf("pixel (%d,0).R = %v, want %v", x, got, want)
		}
	}
}

// checkerboard builds a small non-uniform test image.
func checkerboard(t *testing.T, w, h int) *filtra.Image {
	t.Helper()
	img, err := filtra.NewImage(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, filtra.White)
			} else {
				img.Set(x, y, filtra.Color{R: 0.2, G: 0.4, B: 0.6})
			}
		}
	}
	return img
}

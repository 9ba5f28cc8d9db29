package delta

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/filtra/filtra"
)

func testImage(t *testing.T) *filtra.Image {
	t.Helper()
	img, err := filtra.NewImage(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, filtra.Color{
				R: float64(x) / 4,
				G: float64(y) / 3,
				B: float64(x+y) / 7,
			})
		}
	}
	return img
}

func TestEncodeFirstPixelIsOwnValue(t *testing.T) {
	img, err := filtra.NewUniform(2, 2, filtra.Color{R: 0.5, G: 0.25, B: 0.75})
	if err != nil {
		t.Fatal(err)
	}

	deltas := Encode(img)

	if got, want := deltas[0], (Delta{R: 0.5, G: 0.25, B: 0.75}); got != want {
		t.Errorf("first delta = %v, want %v", got, want)
	}
	// Remaining deltas of a uniform image are zero.
	for i := 1; i < len(deltas); i++ {
		if deltas[i] != (Delta{}) {
			t.Errorf("delta %d = %v, want zero", i, deltas[i])
		}
	}
}

func TestEncodeReconstructRoundTrip(t *testing.T) {
	img := testImage(t)

	deltas := Encode(img)
	got, err := Reconstruct(deltas, 4, 3)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}

	const tol = 1e-12
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			a, b := img.At(x, y), got.At(x, y)
			if math.Abs(a.R-b.R) > tol ||
				math.Abs(a.G-b.G) > tol ||
				math.Abs(a.B-b.B) > tol {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, b, a)
			}
		}
	}
}

func TestReconstructSizeMismatch(t *testing.T) {
	if _, err := Reconstruct(make([]Delta, 5), 2, 2); err == nil {
		t.Error("Reconstruct with mismatched size = nil, want error")
	}
}

func TestWriteCSV(t *testing.T) {
	img := testImage(t)
	deltas := Encode(img)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, deltas); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "R,G,B" {
		t.Errorf("header = %q, want %q", lines[0], "R,G,B")
	}
	if got, want := len(lines)-1, 4*3; got != want {
		t.Fatalf("data lines = %d, want %d", got, want)
	}

	// Six decimal digits per value, negatives allowed.
	for i, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			t.Fatalf("line %d = %q, want 3 fields", i+1, line)
		}
		for _, f := range fields {
			dot := strings.IndexByte(f, '.')
			if dot < 0 || len(f)-dot-1 != 6 {
				t.Fatalf("field %q does not carry six decimal digits", f)
			}
		}
	}
}

func TestSaveCSVRecoversFromBadPath(t *testing.T) {
	img := testImage(t)
	deltas := Encode(img)

	// A directory that does not exist: the write is skipped, not fatal.
	SaveCSV(filepath.Join(t.TempDir(), "no-such-dir", "deltas.csv"), deltas)
}

package draw

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/filtra/filtra"
)

func TestExportAnimation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")

	const frames = 5
	err := ExportAnimation(dir, 40, 30, frames, SweepingDisc(6, filtra.Red))
	if err != nil {
		t.Fatalf("ExportAnimation: %v", err)
	}

	for i := 0; i < frames; i++ {
		path := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", i))
		if _, err := os.Stat(path); err != nil {
			t.Errorf("frame %d missing: %v", i, err)
		}
	}

	// The middle frame has the disc on canvas.
	mid, err := filtra.Load(filepath.Join(dir, "frame_002.png"))
	if err != nil {
		t.Fatal(err)
	}
	if mid.Width() != 40 || mid.Height() != 30 {
		t.Fatalf("frame dimensions = %dx%d, want 40x30", mid.Width(), mid.Height())
	}
	center := mid.At(20, 15)
	if center.R < 0.9 {
		t.Errorf("mid-frame center = %v, want the disc color", center)
	}
}

func TestExportAnimationBadFrameCount(t *testing.T) {
	if err := ExportAnimation(t.TempDir(), 10, 10, 0, SweepingDisc(2, filtra.White)); err == nil {
		t.Error("ExportAnimation(frames=0) = nil, want error")
	}
}

func TestSweepingDiscCoversTheCanvas(t *testing.T) {
	fn := SweepingDisc(4, filtra.White)

	first, err := filtra.NewImage(32, 16)
	if err != nil {
		t.Fatal(err)
	}
	fn(first, 0, 0)
	last, err := filtra.NewImage(32, 16)
	if err != nil {
		t.Fatal(err)
	}
	fn(last, 9, 1)

	// t=0 and t=1 place the disc fully off-canvas.
	for _, img := range []*filtra.Image{first, last} {
		for i, c := range img.Pix() {
			if c != filtra.Black {
				t.Fatalf("pixel %d = %v, want empty canvas at animation ends", i, c)
			}
		}
	}
}

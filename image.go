package filtra

import (
	"errors"
	"fmt"
	"image"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("filtra: invalid dimensions")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("filtra: coordinates out of bounds")
)

// Image is a width×height grid of RGB color samples stored row-major.
// Channel values are normalized to [0, 1].
//
// Most filters mutate an Image in place. Windowed and geometric transforms
// construct a fresh buffer and install it with [Image.Swap], so the caller's
// old buffer is discarded atomically and a pixel's new value never reads
// already-updated neighbors.
//
// Thread safety: Image is safe for concurrent read access. Mutation requires
// external synchronization.
type Image struct {
	width  int
	height int
	pix    []Color
}

// NewImage creates a new image of the given dimensions, filled with black.
// Returns ErrInvalidDimensions if width or height is non-positive.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}, nil
}

// NewUniform creates a new image of the given dimensions with every pixel
// set to c.
func NewUniform(width, height int, c Color) (*Image, error) {
	m, err := NewImage(width, height)
	if err != nil {
		return nil, err
	}
	for i := range m.pix {
		m.pix[i] = c
	}
	return m, nil
}

// Width returns the image width in pixels.
func (m *Image) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image) Height() int { return m.height }

// In reports whether (x, y) is inside the image bounds.
func (m *Image) In(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the color at (x, y). Panics if the coordinates are out of
// bounds; use [Image.AtClamped] for edge-replicating lookups.
func (m *Image) At(x, y int) Color {
	return m.pix[y*m.width+x]
}

// Set stores c at (x, y). Panics if the coordinates are out of bounds.
func (m *Image) Set(x, y int, c Color) {
	m.pix[y*m.width+x] = c
}

// AtClamped returns the color at (x, y) with out-of-bounds coordinates
// clamped to the nearest valid coordinate (edge replication).
func (m *Image) AtClamped(x, y int) Color {
	if x < 0 {
		x = 0
	} else if x >= m.width {
		x = m.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= m.height {
		y = m.height - 1
	}
	return m.pix[y*m.width+x]
}

// Pix returns the underlying pixel slice in row-major order. The slice is
// shared with the image; writes through it are visible immediately.
func (m *Image) Pix() []Color { return m.pix }

// Clone returns a deep copy of the image. Windowed transforms read from a
// clone (a frozen snapshot) while writing to the live buffer.
func (m *Image) Clone() *Image {
	pix := make([]Color, len(m.pix))
	copy(pix, m.pix)
	return &Image{width: m.width, height: m.height, pix: pix}
}

// Swap installs the contents of other into m and leaves other holding m's
// previous contents. Filters that build a replacement buffer call Swap to
// transfer ownership; the discarded buffer is then dropped by the callee.
func (m *Image) Swap(other *Image) {
	m.width, other.width = other.width, m.width
	m.height, other.height = other.height, m.height
	m.pix, other.pix = other.pix, m.pix
}

// Fill sets every pixel to c.
func (m *Image) Fill(c Color) {
	for i := range m.pix {
		m.pix[i] = c
	}
}

// ClampAll clamps every channel of every pixel to [0, 1]. Filters whose
// arithmetic can leave the valid range call this before returning.
func (m *Image) ClampAll() {
	for i := range m.pix {
		m.pix[i] = m.pix[i].Clamp()
	}
}

// FromStdImage creates an Image from a standard library image.Image.
// Alpha is discarded; filtra images are opaque RGB.
func FromStdImage(img image.Image) *Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	m := &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}

	// Fast path for NRGBA images (the common decode result).
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			row := nrgba.Pix[y*nrgba.Stride:]
			for x := 0; x < width; x++ {
				off := x * 4
				m.pix[y*width+x] = Color{
					R: float64(row[off]) / 255,
					G: float64(row[off+1]) / 255,
					B: float64(row[off+2]) / 255,
				}
			}
		}
		return m
	}

	// Generic slow path for any image type.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.pix[y*width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}

	return m
}

// ToStdImage converts the Image to a standard library *image.NRGBA,
// clamping and quantizing each channel to 8 bits.
func (m *Image) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, m.width, m.height))
	for y := 0; y < m.height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < m.width; x++ {
			c := m.pix[y*m.width+x]
			off := x * 4
			row[off] = uint8(clamp255(c.R*255) + 0.5)
			row[off+1] = uint8(clamp255(c.G*255) + 0.5)
			row[off+2] = uint8(clamp255(c.B*255) + 0.5)
			row[off+3] = 255
		}
	}
	return nrgba
}

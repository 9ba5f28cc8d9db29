// Package codec decodes and encodes image files for filtra.
//
// Supported formats: PNG, JPEG, BMP, TIFF for both directions, WebP for
// decoding only. The encoder is selected from the file extension.
package codec

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ErrUnsupportedFormat is returned when the image format is not supported.
var ErrUnsupportedFormat = errors.New("codec: unsupported format")

// DefaultJPEGQuality is used when encoding JPEG files.
const DefaultJPEGQuality = 92

// Load opens and decodes the image file at path, auto-detecting the format
// from the file content. A missing file surfaces as a wrapped fs.ErrNotExist.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("codec: decode: %w", err)
	}
	return img, nil
}

// Save encodes img to the file at path. The format is inferred from the
// file extension; unknown extensions return ErrUnsupportedFormat.
func Save(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !CanEncode(ext) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}

	if err := Encode(f, img, ext); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// CanEncode reports whether the given lower-case extension has an encoder.
func CanEncode(ext string) bool {
	switch ext {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// Encode writes img to w in the format named by ext (a lower-case file
// extension including the dot).
func Encode(w io.Writer, img image.Image, ext string) error {
	switch ext {
	case ".png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("codec: encode PNG: %w", err)
		}
	case ".jpg", ".jpeg":
		opts := &jpeg.Options{Quality: DefaultJPEGQuality}
		if err := jpeg.Encode(w, img, opts); err != nil {
			return fmt.Errorf("codec: encode JPEG: %w", err)
		}
	case ".bmp":
		if err := bmp.Encode(w, img); err != nil {
			return fmt.Errorf("codec: encode BMP: %w", err)
		}
	case ".tif", ".tiff":
		opts := &tiff.Options{Compression: tiff.Deflate}
		if err := tiff.Encode(w, img, opts); err != nil {
			return fmt.Errorf("codec: encode TIFF: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

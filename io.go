package filtra

import (
	"io"

	"github.com/filtra/filtra/internal/codec"
)

// Load reads and decodes the image file at path into an Image.
// PNG, JPEG, BMP, TIFF and WebP files are accepted; the format is detected
// from the file content, not the extension.
func Load(path string) (*Image, error) {
	img, err := codec.Load(path)
	if err != nil {
		return nil, err
	}
	m := FromStdImage(img)
	Logger().Info("image loaded", "path", path, "width", m.width, "height", m.height)
	return m, nil
}

// Decode decodes an image from r into an Image, auto-detecting the format.
func Decode(r io.Reader) (*Image, error) {
	img, err := codec.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromStdImage(img), nil
}

// Save encodes the image to the file at path. The output format is inferred
// from the file extension (.png, .jpg/.jpeg, .bmp, .tif/.tiff).
func (m *Image) Save(path string) error {
	if err := codec.Save(path, m.ToStdImage()); err != nil {
		return err
	}
	Logger().Info("image saved", "path", path, "width", m.width, "height", m.height)
	return nil
}

// EncodePNG encodes the image as PNG to the given writer.
func (m *Image) EncodePNG(w io.Writer) error {
	return codec.Encode(w, m.ToStdImage(), ".png")
}

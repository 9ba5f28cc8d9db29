package delta

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
)

// Stream header for the compressed delta format.
const (
	streamMagic   = "FDL1"
	maxStreamSide = 1 << 20 // sanity bound on decoded dimensions
)

// WriteCompressed writes deltas for a width×height image as a zstd stream.
// The payload is a small header (magic, width, height) followed by three
// little-endian float32 channel deltas per pixel.
func WriteCompressed(w io.Writer, deltas []Delta, width, height int) error {
	if len(deltas) != width*height {
		return fmt.Errorf("delta: %d deltas for %dx%d image",
			len(deltas), width, height)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("delta: init compressor: %w", err)
	}

	if err := writePayload(zw, deltas, width, height); err != nil {
		_ = zw.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("delta: flush compressor: %w", err)
	}
	return nil
}

func writePayload(w io.Writer, deltas []Delta, width, height int) error {
	buf := make([]byte, 0, 12+len(deltas)*12)
	buf = append(buf, streamMagic...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(width))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(height))

	for _, d := range deltas {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(d.R)))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(d.G)))
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(float32(d.B)))
	}

	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("delta: write stream: %w", err)
	}
	return nil
}

// ReadCompressed reads a stream written by WriteCompressed and returns the
// deltas with the image dimensions.
func ReadCompressed(r io.Reader) ([]Delta, int, int, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("delta: init decompressor: %w", err)
	}
	defer zr.Close()

	header := make([]byte, 12)
	if _, err := io.ReadFull(zr, header); err != nil {
		return nil, 0, 0, fmt.Errorf("delta: read header: %w", err)
	}
	if string(header[:4]) != streamMagic {
		return nil, 0, 0, fmt.Errorf("delta: bad stream magic %q", header[:4])
	}

	width := int(binary.LittleEndian.Uint32(header[4:8]))
	height := int(binary.LittleEndian.Uint32(header[8:12]))
	if width <= 0 || height <= 0 || width > maxStreamSide || height > maxStreamSide {
		return nil, 0, 0, fmt.Errorf("delta: implausible dimensions %dx%d", width, height)
	}

	payload := make([]byte, width*height*12)
	if _, err := io.ReadFull(zr, payload); err != nil {
		return nil, 0, 0, fmt.Errorf("delta: read stream: %w", err)
	}

	deltas := make([]Delta, width*height)
	for i := range deltas {
		off := i * 12
		deltas[i] = Delta{
			R: float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off:]))),
			G: float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off+4:]))),
			B: float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[off+8:]))),
		}
	}
	return deltas, width, height, nil
}

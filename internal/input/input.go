// Package input loads image files, unwrapping zstd or gzip compression.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	qoi "github.com/dolanor/qoiview"
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	gzipMagic = []byte{0x1f, 0x8b}
)

// MaxSize bounds the decompressed size of an input. The default is the
// largest stream a valid image can need: 5 bytes per pixel at PixelsMax.
var MaxSize int64 = qoi.HeaderSize + qoi.PixelsMax*5 + qoi.PaddingSize

var ErrTooLarge = errors.New("input: decompressed data too large")

// Load reads the file at path and returns its uncompressed contents.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unwrap(data)
}

// Unwrap decompresses data if it starts with a zstd or gzip header and
// returns it unchanged otherwise.
func Unwrap(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(MaxSize)))
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		out, err := dec.DecodeAll(data, nil)
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, MaxSize)
		}
		if err != nil {
			return nil, fmt.Errorf("input: zstd: %w", err)
		}
		return out, nil

	case bytes.HasPrefix(data, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("input: gzip: %w", err)
		}
		defer zr.Close()

		out, err := io.ReadAll(io.LimitReader(zr, MaxSize+1))
		if err != nil {
			return nil, fmt.Errorf("input: gzip: %w", err)
		}
		if int64(len(out)) > MaxSize {
			return nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, MaxSize)
		}
		return out, nil
	}
	return data, nil
}

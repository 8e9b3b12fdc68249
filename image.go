package qoi

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("qoi", Magic, Decode, DecodeConfig)
}

// Decode reads a QOI image from r. The result is always an *image.NRGBA.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m, err := DecodeBytes(data, ChannelsRGBA)
	if err != nil {
		return nil, err
	}
	return m.NRGBA(), nil
}

// DecodeConfig reads only the header of a QOI image from r. Like Decode, it
// rejects input too short to hold both the header and the padding.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var b [HeaderSize + PaddingSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return image.Config{}, fmt.Errorf("%w: %v", ErrTooShort, err)
		}
		return image.Config{}, err
	}

	h, err := ParseHeader(b[:])
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

// NRGBA returns m as an *image.NRGBA. A 4-channel buffer is shared, not
// copied; a 3-channel buffer is expanded with opaque alpha.
func (m *Image) NRGBA() *image.NRGBA {
	rect := image.Rect(0, 0, int(m.Width), int(m.Height))
	if m.Channels == ChannelsRGBA {
		return &image.NRGBA{Pix: m.Pix, Stride: 4 * int(m.Width), Rect: rect}
	}

	img := image.NewNRGBA(rect)
	dst := img.Pix
	for src := 0; src+2 < len(m.Pix); src += 3 {
		dst[0] = m.Pix[src]
		dst[1] = m.Pix[src+1]
		dst[2] = m.Pix[src+2]
		dst[3] = 255
		dst = dst[4:]
	}
	return img
}

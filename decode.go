package qoi

import (
	"fmt"
	"image/color"
)

// Image is a decoded QOI image. Pix holds Width*Height pixels in raster
// order, Channels bytes each.
type Image struct {
	Pix        []byte
	Width      uint32
	Height     uint32
	Channels   Channels
	ColorSpace ColorSpace
}

// Stride returns the number of bytes in one row of Pix.
func (m *Image) Stride() int {
	return int(m.Width) * int(m.Channels)
}

// DecodeBytes decodes a complete QOI stream. channels selects the layout of
// the returned pixels; 0 keeps the channel count stored in the header.
//
// Once the header is valid, decoding never fails: if the chunk stream ends
// before every pixel is produced, the last pixel is repeated.
func DecodeBytes(data []byte, channels Channels) (*Image, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	if channels == 0 {
		channels = h.Channels
	}
	if !channels.valid() {
		return nil, fmt.Errorf("%w: requested %d", ErrIllegalChannels, channels)
	}

	stride := int(channels)
	pixels := make([]byte, int(h.Pixels())*stride)

	var (
		seen [64]color.NRGBA
		pix  = color.NRGBA{A: 255}
		run  int
		pos  = HeaderSize
		end  = len(data) - PaddingSize
	)

	for off := 0; off < len(pixels); off += stride {
		if run > 0 {
			run--
		} else if pos < end {
			var o op
			o, pos = readOp(data, pos)
			pix, run = o.apply(pix, &seen)
			seen[colorHash(pix)] = pix
		}

		pixels[off] = pix.R
		pixels[off+1] = pix.G
		pixels[off+2] = pix.B
		if stride == 4 {
			pixels[off+3] = pix.A
		}
	}

	return &Image{
		Pix:        pixels,
		Width:      h.Width,
		Height:     h.Height,
		Channels:   channels,
		ColorSpace: h.ColorSpace,
	}, nil
}

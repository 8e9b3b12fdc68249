package qoi

import (
	"encoding/binary"
	"fmt"
)

type Header struct {
	Width      uint32
	Height     uint32
	Channels   Channels
	ColorSpace ColorSpace
}

// Pixels returns width*height without overflowing.
func (h Header) Pixels() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// ParseHeader validates the fixed header at the start of data. data must
// also be long enough to hold the trailing padding.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize+PaddingSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}
	return parseHeader(data[:HeaderSize])
}

func parseHeader(b []byte) (Header, error) {
	if string(b[:4]) != Magic {
		return Header{}, ErrBadMagic
	}

	h := Header{
		Width:      binary.BigEndian.Uint32(b[4:8]),
		Height:     binary.BigEndian.Uint32(b[8:12]),
		Channels:   Channels(b[12]),
		ColorSpace: ColorSpace(b[13]),
	}

	if h.Width == 0 {
		return Header{}, fmt.Errorf("%w: %d", ErrIllegalWidth, h.Width)
	}
	if h.Height == 0 {
		return Header{}, fmt.Errorf("%w: %d", ErrIllegalHeight, h.Height)
	}
	if h.Pixels() > PixelsMax {
		return Header{}, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, h.Width, h.Height)
	}
	if !h.Channels.valid() {
		return Header{}, fmt.Errorf("%w: %d", ErrIllegalChannels, h.Channels)
	}
	if h.ColorSpace&0xf0 != 0 {
		return Header{}, fmt.Errorf("%w: 0x%02x", ErrIllegalColorSpace, byte(h.ColorSpace))
	}

	return h, nil
}

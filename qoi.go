// Package qoi decodes images in the QOI ("Quite OK Image") format.
package qoi

import (
	"errors"
	"image/color"
)

const Magic = "qoif"

type ChunkType byte

const (
	Index ChunkType = 0x00 // 00xxxxxx
	Diff  ChunkType = 0x40 // 01xxxxxx
	Luma  ChunkType = 0x80 // 10xxxxxx
	Run   ChunkType = 0xc0 // 11xxxxxx
	RGB   ChunkType = 0xfe
	RGBA  ChunkType = 0xff
)

type Mask byte

const (
	Mask2 Mask = 0xc0
	Mask6 Mask = 0x3f
)

type ColorSpace byte

const (
	ColorSpaceSRGB   ColorSpace = 0x00
	ColorSpaceLinear ColorSpace = 0x01
)

type Channels uint8

const (
	ChannelsRGB  Channels = 3
	ChannelsRGBA Channels = 4
)

func (c Channels) valid() bool {
	return c == ChannelsRGB || c == ChannelsRGBA
}

const HeaderSize = 14

// PixelsMax bounds width*height so that the output allocation stays below
// 2GB even at 5 bytes per pixel.
const PixelsMax = 400_000_000

// PaddingSize is the length of the end marker (seven 0x00 and one 0x01)
// terminating every stream. Its content is not checked.
const PaddingSize = 8

var (
	ErrTooShort          = errors.New("qoi: file too short")
	ErrBadMagic          = errors.New("qoi: bad header magic value")
	ErrIllegalWidth      = errors.New("qoi: illegal width")
	ErrIllegalHeight     = errors.New("qoi: illegal height")
	ErrImageTooLarge     = errors.New("qoi: image is too large")
	ErrIllegalChannels   = errors.New("qoi: illegal number of channels")
	ErrIllegalColorSpace = errors.New("qoi: illegal color space")
)

func colorHash(c color.NRGBA) uint8 {
	return uint8((int(c.R)*3 + int(c.G)*5 + int(c.B)*7 + int(c.A)*11) % 64)
}

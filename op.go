package qoi

import "image/color"

type opKind uint8

const (
	opRGBA opKind = iota
	opRGB
	opIndex
	opDiff
	opLuma
	opRun
)

// op is one decoded chunk. Only the fields relevant to kind are set.
type op struct {
	kind opKind

	lit color.NRGBA // rgb, rgba

	slot uint8 // index

	dr, dg, db int8 // diff, luma

	run int // run: repeats after the current pixel
}

// readOp decodes the chunk starting at data[pos] and returns it with the
// position of the following chunk. The caller guarantees that pos leaves
// room for the trailing padding, so the at most 4 extra bytes read here are
// always in range.
func readOp(data []byte, pos int) (op, int) {
	b1 := data[pos]
	pos++

	// The literal tags share the 11 class bits with runs and must be
	// matched first.
	switch {
	case b1 == byte(RGBA):
		return op{
			kind: opRGBA,
			lit:  color.NRGBA{R: data[pos], G: data[pos+1], B: data[pos+2], A: data[pos+3]},
		}, pos + 4
	case b1 == byte(RGB):
		return op{
			kind: opRGB,
			lit:  color.NRGBA{R: data[pos], G: data[pos+1], B: data[pos+2]},
		}, pos + 3
	}

	switch ChunkType(b1 & byte(Mask2)) {
	case Index:
		return op{kind: opIndex, slot: b1 & byte(Mask6)}, pos
	case Diff:
		return op{
			kind: opDiff,
			dr:   int8((b1>>4)&0x03) - 2,
			dg:   int8((b1>>2)&0x03) - 2,
			db:   int8(b1&0x03) - 2,
		}, pos
	case Luma:
		b2 := data[pos]
		vg := int8(b1&byte(Mask6)) - 32
		return op{
			kind: opLuma,
			dr:   vg - 8 + int8(b2>>4),
			dg:   vg,
			db:   vg - 8 + int8(b2&0x0f),
		}, pos + 1
	default:
		return op{kind: opRun, run: int(b1 & byte(Mask6))}, pos
	}
}

// apply returns the pixel produced by o given the previous pixel and the
// cache, along with the number of pending repeats.
func (o op) apply(prev color.NRGBA, seen *[64]color.NRGBA) (color.NRGBA, int) {
	switch o.kind {
	case opRGBA:
		return o.lit, 0
	case opRGB:
		px := o.lit
		px.A = prev.A
		return px, 0
	case opIndex:
		return seen[o.slot], 0
	case opDiff, opLuma:
		return color.NRGBA{
			R: wrapAdd(prev.R, o.dr),
			G: wrapAdd(prev.G, o.dg),
			B: wrapAdd(prev.B, o.db),
			A: prev.A,
		}, 0
	default:
		return prev, o.run
	}
}

// wrapAdd adds d to c modulo 256.
func wrapAdd(c uint8, d int8) uint8 {
	return uint8((int(c) + int(d)) & 0xff)
}

package qoi

// DefaultChunkLimit is the target size of one RowChunk in bytes.
const DefaultChunkLimit = 512 * 1024

// RowChunk is a horizontal band of an Image. Pix aliases the image buffer.
type RowChunk struct {
	OffsetY int
	Rows    int
	Pix     []byte
}

// RowChunks splits m into bands of whole rows no larger than limit bytes,
// except that every band holds at least one row. An image that fits in
// limit is returned as a single chunk. limit <= 0 means DefaultChunkLimit.
func (m *Image) RowChunks(limit int) []RowChunk {
	if limit <= 0 {
		limit = DefaultChunkLimit
	}

	height := int(m.Height)
	if len(m.Pix) <= limit {
		return []RowChunk{{OffsetY: 0, Rows: height, Pix: m.Pix}}
	}

	rowBytes := m.Stride()
	perChunk := limit / rowBytes
	if perChunk < 1 {
		perChunk = 1
	}

	chunks := make([]RowChunk, 0, (height+perChunk-1)/perChunk)
	for y := 0; y < height; y += perChunk {
		rows := perChunk
		if y+rows > height {
			rows = height - y
		}
		start := y * rowBytes
		chunks = append(chunks, RowChunk{
			OffsetY: y,
			Rows:    rows,
			Pix:     m.Pix[start : start+rows*rowBytes : start+rows*rowBytes],
		})
	}
	return chunks
}

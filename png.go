package pngchunk

import (
	"bytes"
	"fmt"
	"slices"
	"strings"
)

// Signature is the fixed 8 byte header of every PNG file.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// PNG is a signature followed by an ordered chunk sequence.
type PNG struct {
	chunks []*Chunk
}

// NewPNG returns a PNG holding chunks in the given order.
func NewPNG(chunks ...*Chunk) *PNG {
	return &PNG{chunks: append([]*Chunk(nil), chunks...)}
}

// Parse decodes a whole PNG byte stream. Any chunk failure aborts the parse.
func Parse(b []byte) (*PNG, error) {
	if len(b) < len(Signature) {
		return nil, fmt.Errorf("%w: %d bytes", ErrPNGTooSmall, len(b))
	}
	if !bytes.Equal(b[:len(Signature)], Signature[:]) {
		return nil, fmt.Errorf("%w: % x", ErrInvalidHeader, b[:len(Signature)])
	}

	var chunks []*Chunk
	for off := len(Signature); off < len(b); {
		chunk, err := ParseChunk(b[off:])
		if err != nil {
			return nil, fmt.Errorf("%w: chunk %d at offset %d: %w", ErrParseChunk, len(chunks), off, err)
		}

		chunks = append(chunks, chunk)
		off += chunk.WireSize()
	}

	return &PNG{chunks: chunks}, nil
}

// AppendChunk adds c after the last chunk.
func (p *PNG) AppendChunk(c *Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveFirstChunk removes and returns the first chunk of type typ.
// Later chunks of the same type are left in place.
func (p *PNG) RemoveFirstChunk(typ string) (*Chunk, error) {
	i := p.index(typ)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrChunkNotFound, typ)
	}

	c := p.chunks[i]
	p.chunks = slices.Delete(p.chunks, i, i+1)
	return c, nil
}

// ChunkByType returns the first chunk of type typ, or nil.
func (p *PNG) ChunkByType(typ string) *Chunk {
	if i := p.index(typ); i >= 0 {
		return p.chunks[i]
	}

	return nil
}

// ChunksByType returns every chunk of type typ in file order.
func (p *PNG) ChunksByType(typ string) []*Chunk {
	var out []*Chunk
	for _, c := range p.chunks {
		if c.typ.String() == typ {
			out = append(out, c)
		}
	}

	return out
}

// Chunks returns the chunk sequence in file order.
func (p *PNG) Chunks() []*Chunk {
	return append([]*Chunk(nil), p.chunks...)
}

func (p *PNG) index(typ string) int {
	for i, c := range p.chunks {
		if c.typ.String() == typ {
			return i
		}
	}

	return -1
}

// Bytes encodes the signature followed by every chunk.
func (p *PNG) Bytes() []byte {
	size := len(Signature)
	for _, c := range p.chunks {
		size += c.WireSize()
	}

	out := make([]byte, 0, size)
	out = append(out, Signature[:]...)
	for _, c := range p.chunks {
		out = c.appendTo(out)
	}

	return out
}

func (p *PNG) String() string {
	var sb strings.Builder
	for i, c := range p.chunks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(c.String())
	}

	return sb.String()
}

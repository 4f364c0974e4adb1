package pngchunk

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

// chunkOverhead is the length, type and CRC fields around the payload.
const chunkOverhead = 12

// Chunk is one length-prefixed, typed, checksummed record.
type Chunk struct {
	typ  ChunkType
	data []byte
	crc  uint32
}

// NewChunk builds a chunk and computes its CRC over type and data.
// The chunk keeps its own copy of data.
func NewChunk(typ ChunkType, data []byte) *Chunk {
	data = bytes.Clone(data)
	if data == nil {
		data = []byte{}
	}

	return &Chunk{typ: typ, data: data, crc: checksum(typ, data)}
}

// ParseChunk parses the chunk at the start of b and verifies its CRC.
// Bytes past the chunk are ignored; use WireSize to advance.
func ParseChunk(b []byte) (*Chunk, error) {
	if len(b) < chunkOverhead {
		return nil, fmt.Errorf("%w: %d bytes", ErrChunkTooSmall, len(b))
	}

	length := binary.BigEndian.Uint32(b[0:4])

	typ, err := ChunkTypeFromBytes([4]byte(b[4:8]))
	if err != nil {
		return nil, err
	}

	if uint64(len(b)) < uint64(length)+chunkOverhead {
		return nil, &ChunkSizeError{BytesReceived: len(b), LengthField: length}
	}

	end := 8 + int(length)
	stored := binary.BigEndian.Uint32(b[end : end+4])
	if computed := crc32.ChecksumIEEE(b[4:end]); computed != stored {
		return nil, fmt.Errorf("%w: %s: stored 0x%08x, computed 0x%08x", ErrInvalidCRC, typ, stored, computed)
	}

	data := make([]byte, length)
	copy(data, b[8:end])

	return &Chunk{typ: typ, data: data, crc: stored}, nil
}

// checksum computes CRC-32/ISO-HDLC over type and data.
func checksum(typ ChunkType, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, typ[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}

// Len returns the payload length as stored in the length field.
func (c *Chunk) Len() uint32 {
	// #nosec G115 -- payloads are built from 32 bit length fields or checked on encode.
	return uint32(len(c.data))
}

// Type returns the chunk type.
func (c *Chunk) Type() ChunkType {
	return c.typ
}

// Data returns the payload. Callers must not modify it.
func (c *Chunk) Data() []byte {
	return c.data
}

// CRC returns the chunk checksum.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// DataString returns the payload as UTF-8 text.
func (c *Chunk) DataString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: %s chunk", ErrDataNotUTF8, c.typ)
	}

	return string(c.data), nil
}

// WireSize returns the encoded size of the chunk.
func (c *Chunk) WireSize() int {
	return chunkOverhead + len(c.data)
}

// Bytes encodes the chunk: length, type, data, CRC.
func (c *Chunk) Bytes() []byte {
	return c.appendTo(make([]byte, 0, c.WireSize()))
}

func (c *Chunk) appendTo(dst []byte) []byte {
	dst = binary.BigEndian.AppendUint32(dst, c.Len())
	dst = append(dst, c.typ[:]...)
	dst = append(dst, c.data...)
	return binary.BigEndian.AppendUint32(dst, c.crc)
}

func (c *Chunk) String() string {
	return fmt.Sprintf("Chunk {\n\tLength: %d\n\tType: %s\n\tData: %d bytes\n\tCRC: %d\n}",
		c.Len(), c.typ, len(c.data), c.crc)
}

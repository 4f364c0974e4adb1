package pngchunk

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeOverflow indicates a size exceeds the 32 bit length field.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidChunkType indicates chunk type bytes are not ASCII letters.
	ErrInvalidChunkType = errors.New("invalid chunk type")
	// ErrChunkTooSmall indicates fewer than 12 bytes are left for a chunk.
	ErrChunkTooSmall = errors.New("chunk too small")
	// ErrInvalidChunkSize indicates the length field exceeds the available bytes.
	ErrInvalidChunkSize = errors.New("invalid chunk size")
	// ErrInvalidCRC indicates a stored checksum does not match chunk contents.
	ErrInvalidCRC = errors.New("invalid chunk CRC")
	// ErrDataNotUTF8 indicates chunk data is not valid UTF-8 text.
	ErrDataNotUTF8 = errors.New("chunk data is not valid UTF-8")
	// ErrPNGTooSmall indicates input is shorter than the PNG signature.
	ErrPNGTooSmall = errors.New("PNG too small")
	// ErrInvalidHeader indicates input does not start with the PNG signature.
	ErrInvalidHeader = errors.New("invalid PNG header")
	// ErrChunkNotFound indicates no chunk of the requested type exists.
	ErrChunkNotFound = errors.New("no chunk of given type found")
	// ErrParseChunk indicates a chunk inside a PNG failed to parse.
	ErrParseChunk = errors.New("parse chunk failed")
	// ErrLZ4Compress indicates LZ4 compression failed.
	ErrLZ4Compress = errors.New("LZ4 compression failed")
	// ErrOpenFile indicates PNG file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrReadFile indicates PNG file read failed.
	ErrReadFile = errors.New("read file failed")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrWriteFile indicates writing PNG bytes failed.
	ErrWriteFile = errors.New("write file failed")
)

// ChunkSizeError reports a chunk whose length field runs past the input.
// It matches ErrInvalidChunkSize with errors.Is.
type ChunkSizeError struct {
	BytesReceived int
	LengthField   uint32
}

func (e *ChunkSizeError) Error() string {
	return fmt.Sprintf("%v: length field %d needs %d bytes, got %d",
		ErrInvalidChunkSize, e.LengthField, uint64(e.LengthField)+chunkOverhead, e.BytesReceived)
}

// Is reports whether target is ErrInvalidChunkSize.
func (e *ChunkSizeError) Is(target error) bool {
	return target == ErrInvalidChunkSize
}

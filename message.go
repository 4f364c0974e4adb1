package pngchunk

import (
	"fmt"
	"unicode/utf8"
)

// EncodeOptions configures EncodeMessage.
type EncodeOptions struct {
	// Compress stores the message as an LZ4 payload when that makes it smaller.
	Compress bool
}

// EncodeMessage appends a chunk of type typ carrying message to the PNG in
// file and returns the new file bytes. Nil opts stores the message as is.
func EncodeMessage(file []byte, typ, message string, opts *EncodeOptions) ([]byte, error) {
	png, err := Parse(file)
	if err != nil {
		return nil, err
	}

	chunkType, err := ParseChunkType(typ)
	if err != nil {
		return nil, err
	}

	if _, err := lengthField(len(message)); err != nil {
		return nil, err
	}

	data := []byte(message)
	if opts != nil && opts.Compress {
		data, err = compressPayload(data)
		if err != nil {
			return nil, err
		}
	}

	png.AppendChunk(NewChunk(chunkType, data))
	return png.Bytes(), nil
}

// DecodeMessage returns the text of the first chunk of type typ.
// LZ4 payloads written by EncodeMessage are inflated transparently.
func DecodeMessage(file []byte, typ string) (string, error) {
	png, err := Parse(file)
	if err != nil {
		return "", err
	}

	chunk := png.ChunkByType(typ)
	if chunk == nil {
		return "", fmt.Errorf("%w: %q", ErrChunkNotFound, typ)
	}

	if data, ok := decompressPayload(chunk.Data()); ok {
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: %s chunk", ErrDataNotUTF8, chunk.Type())
		}
		return string(data), nil
	}

	return chunk.DataString()
}

// RemoveMessage removes the first chunk of type typ and returns the new file bytes.
func RemoveMessage(file []byte, typ string) ([]byte, error) {
	png, err := Parse(file)
	if err != nil {
		return nil, err
	}

	if _, err := png.RemoveFirstChunk(typ); err != nil {
		return nil, err
	}

	return png.Bytes(), nil
}

// ListChunks returns a summary of every chunk in file order.
func ListChunks(file []byte) ([]string, error) {
	png, err := Parse(file)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(png.chunks))
	for _, c := range png.chunks {
		out = append(out, c.String())
	}

	return out, nil
}

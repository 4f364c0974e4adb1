package pngchunk

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

const (
	// PayloadMagicLZ4 marks an LZ4-compressed message payload. The leading
	// 0xff never occurs in UTF-8, so no text message can start with it.
	PayloadMagicLZ4 = "\xffLZ4"

	// payloadHeaderSize is the magic plus the uncompressed size.
	payloadHeaderSize = 8
	// minCompressSize is the smallest message worth compressing.
	minCompressSize = 64
	// lz4MaxRatio bounds the declared size against the block length.
	lz4MaxRatio = 255
)

// compressPayload stores data as an LZ4 block or returns it unchanged when
// compression does not pay off.
func compressPayload(data []byte) ([]byte, error) {
	if len(data) < minCompressSize {
		return data, nil
	}
	size, err := lengthField(len(data))
	if err != nil {
		return nil, err
	}

	buf := make([]byte, payloadHeaderSize+lz4.CompressBlockBound(len(data)))
	cn, err := lz4.CompressBlockHC(data, buf[payloadHeaderSize:], 0, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLZ4Compress, err)
	}
	if cn == 0 || float64(payloadHeaderSize+cn) > float64(len(data))*0.85 {
		return data, nil
	}

	copy(buf, PayloadMagicLZ4)
	binary.LittleEndian.PutUint32(buf[4:payloadHeaderSize], size)
	return buf[:payloadHeaderSize+cn], nil
}

// decompressPayload inflates an LZ4 payload. It reports false and returns
// data unchanged when data is not a well-formed compressed payload.
func decompressPayload(data []byte) ([]byte, bool) {
	if len(data) <= payloadHeaderSize || string(data[:4]) != PayloadMagicLZ4 {
		return data, false
	}

	block := data[payloadHeaderSize:]
	size := uint64(binary.LittleEndian.Uint32(data[4:payloadHeaderSize]))
	if size == 0 || size > uint64(len(block))*lz4MaxRatio {
		return data, false
	}

	out := make([]byte, size)
	n, err := lz4.UncompressBlock(block, out)
	if err != nil || uint64(n) != size {
		return data, false
	}

	return out, true
}

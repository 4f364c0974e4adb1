package pngchunk

import (
	"fmt"
	"strings"
)

// propertyBit is bit 5 of a type byte, the ASCII lowercase bit.
const propertyBit = 0x20

// ChunkType is a four letter chunk type code. Bit 5 of each byte carries
// one property flag: ancillary, private, reserved and safe-to-copy.
type ChunkType [4]byte

// ChunkTypeFromBytes validates b and returns it as a ChunkType.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for i, c := range b {
		if !isTypeLetter(c) {
			return ChunkType{}, fmt.Errorf("%w: byte %d is 0x%02x", ErrInvalidChunkType, i, c)
		}
	}

	return ChunkType(b), nil
}

// ParseChunkType parses a four character type name such as "IHDR".
func ParseChunkType(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: %q is %d bytes, want 4", ErrInvalidChunkType, s, len(s))
	}

	var b [4]byte
	copy(b[:], s)
	return ChunkTypeFromBytes(b)
}

// isTypeLetter reports whether c is in A-Z or a-z. The 91..96 gap between
// the two ranges is rejected.
func isTypeLetter(c byte) bool {
	return c >= 65 && c <= 122 && (c <= 90 || c >= 97)
}

// Bytes returns the raw type bytes.
func (t ChunkType) Bytes() [4]byte {
	return t
}

func (t ChunkType) String() string {
	return string(t[:])
}

// IsCritical reports whether the chunk is required to display the image.
func (t ChunkType) IsCritical() bool {
	return t[0]&propertyBit == 0
}

// IsPublic reports whether the type is part of the public registry.
func (t ChunkType) IsPublic() bool {
	return t[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit is clear.
func (t ChunkType) IsReservedBitValid() bool {
	return t[2]&propertyBit == 0
}

// IsSafeToCopy reports whether editors may copy the chunk unchanged.
func (t ChunkType) IsSafeToCopy() bool {
	return t[3]&propertyBit != 0
}

// IsValid reports whether the type is well-formed for the format.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid()
}

// Describe lists the property flags, e.g. "critical, private, reserved-ok, safe-to-copy".
func (t ChunkType) Describe() string {
	flags := make([]string, 0, 4)
	flags = append(flags, pick(t.IsCritical(), "critical", "ancillary"))
	flags = append(flags, pick(t.IsPublic(), "public", "private"))
	flags = append(flags, pick(t.IsReservedBitValid(), "reserved-ok", "reserved-set"))
	flags = append(flags, pick(t.IsSafeToCopy(), "safe-to-copy", "unsafe-to-copy"))
	return strings.Join(flags, ", ")
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}

	return no
}

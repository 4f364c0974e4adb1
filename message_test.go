package pngchunk

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestEncodeDecodeMessage(t *testing.T) {
	t.Parallel()

	file, err := EncodeMessage(Signature[:], "ruSt", "secret", nil)
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	got, err := DecodeMessage(file, "ruSt")
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if got != "secret" {
		t.Fatalf("DecodeMessage() = %q, want %q", got, "secret")
	}
}

func TestEncodeMessageKeepsExistingChunks(t *testing.T) {
	t.Parallel()

	in := testPNG(t).Bytes()
	out, err := EncodeMessage(in, "ruSt", "secret", nil)
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}
	if !bytes.HasPrefix(out, in) {
		t.Fatalf("existing chunks were not preserved verbatim")
	}
}

func TestEncodeMessageCompressed(t *testing.T) {
	t.Parallel()

	message := strings.Repeat("the quick brown fox ", 50)
	file, err := EncodeMessage(Signature[:], "zmSg", message, &EncodeOptions{Compress: true})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	p, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data := p.ChunkByType("zmSg").Data()
	if !bytes.HasPrefix(data, []byte(PayloadMagicLZ4)) {
		t.Fatalf("payload not compressed")
	}
	if len(data) >= len(message) {
		t.Fatalf("compressed payload %d bytes, message %d bytes", len(data), len(message))
	}

	got, err := DecodeMessage(file, "zmSg")
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if got != message {
		t.Fatalf("decoded message mismatch")
	}
}

func TestEncodeMessageCompressSmallFallsBack(t *testing.T) {
	t.Parallel()

	file, err := EncodeMessage(Signature[:], "zmSg", "tiny", &EncodeOptions{Compress: true})
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	p, err := Parse(file)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := string(p.ChunkByType("zmSg").Data()); got != "tiny" {
		t.Fatalf("payload = %q, want raw message", got)
	}
}

func TestDecodeMessageMagicLookalike(t *testing.T) {
	t.Parallel()

	message := "LZ4 plain text that only looks compressed"
	file, err := EncodeMessage(Signature[:], "ruSt", message, nil)
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	got, err := DecodeMessage(file, "ruSt")
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if got != message {
		t.Fatalf("DecodeMessage() = %q, want %q", got, message)
	}
}

func TestDecodeMessageInflatableText(t *testing.T) {
	t.Parallel()

	// a valid LZ4 block that inflates to "hello" behind the old text magic
	message := "LZ4 \x05\x00\x00\x00\x50hello"
	file, err := EncodeMessage(Signature[:], "ruSt", message, nil)
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	got, err := DecodeMessage(file, "ruSt")
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if got != message {
		t.Fatalf("DecodeMessage() = %q, want %q", got, message)
	}
}

func TestPayloadMagicIsNotText(t *testing.T) {
	t.Parallel()

	if utf8.ValidString(PayloadMagicLZ4) {
		t.Fatalf("payload magic %q must not be valid UTF-8", PayloadMagicLZ4)
	}
}

func TestRemoveMessage(t *testing.T) {
	t.Parallel()

	in := testPNG(t).Bytes()
	withMsg, err := EncodeMessage(in, "ruSt", "secret", nil)
	if err != nil {
		t.Fatalf("EncodeMessage: %v", err)
	}

	out, err := RemoveMessage(withMsg, "ruSt")
	if err != nil {
		t.Fatalf("RemoveMessage: %v", err)
	}
	if !bytes.Equal(out, in) {
		t.Fatalf("RemoveMessage did not restore the original bytes")
	}

	if _, err := RemoveMessage(out, "ruSt"); !errors.Is(err, ErrChunkNotFound) {
		t.Fatalf("expected ErrChunkNotFound, got %v", err)
	}
}

func TestListChunks(t *testing.T) {
	t.Parallel()

	got, err := ListChunks(testPNG(t).Bytes())
	if err != nil {
		t.Fatalf("ListChunks: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("ListChunks() returned %d entries, want 3", len(got))
	}
	for i, typ := range []string{"FrSt", "miDl", "LASt"} {
		if !strings.Contains(got[i], "Type: "+typ) {
			t.Fatalf("entry %d = %q, want type %s", i, got[i], typ)
		}
	}
}

func TestMessageErrors(t *testing.T) {
	t.Parallel()

	notUTF8 := NewPNG(testChunk(t, "biNr", "\xff\xfe")).Bytes()

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "encode-bad-type",
			run: func() error {
				_, err := EncodeMessage(Signature[:], "ru$t", "x", nil)
				return err
			},
			wantErr: ErrInvalidChunkType,
		},
		{
			name: "encode-bad-header",
			run: func() error {
				_, err := EncodeMessage([]byte("not a png"), "ruSt", "x", nil)
				return err
			},
			wantErr: ErrInvalidHeader,
		},
		{
			name: "decode-missing",
			run: func() error {
				_, err := DecodeMessage(Signature[:], "ruSt")
				return err
			},
			wantErr: ErrChunkNotFound,
		},
		{
			name: "decode-not-utf8",
			run: func() error {
				_, err := DecodeMessage(notUTF8, "biNr")
				return err
			},
			wantErr: ErrDataNotUTF8,
		},
		{
			name: "list-too-small",
			run: func() error {
				_, err := ListChunks(nil)
				return err
			},
			wantErr: ErrPNGTooSmall,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if err := tc.run(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestCompressPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	data := make([]byte, 128*1024)
	for i := range data {
		data[i] = byte((i*31 + 7) & 0x0f)
	}

	packed, err := compressPayload(data)
	if err != nil {
		t.Fatalf("compressPayload: %v", err)
	}

	out, ok := decompressPayload(packed)
	if !ok {
		t.Fatalf("decompressPayload rejected its own output")
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch")
	}
}

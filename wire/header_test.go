package wire_test

import (
	"bytes"
	"testing"

	"github.com/monetas/bmchannel/wire"
)

// TestHeaderWire tests Header encode/decode round-tripping.
func TestHeaderWire(t *testing.T) {
	hdr := wire.Header{
		Magic:         wire.MainNet,
		PayloadLength: 123,
		Checksum:      0xdeadbeef,
	}
	copy(hdr.Command[:], []byte(wire.CmdVersion))

	var buf bytes.Buffer
	if err := hdr.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() != wire.HeaderSize {
		t.Fatalf("Encode: wrote %d bytes, want %d", buf.Len(), wire.HeaderSize)
	}

	var got wire.Header
	n, err := got.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if n != wire.HeaderSize {
		t.Errorf("Decode: read %d bytes, want %d", n, wire.HeaderSize)
	}
	if got.Magic != hdr.Magic {
		t.Errorf("Decode: magic got %v want %v", got.Magic, hdr.Magic)
	}
	if got.Command != hdr.Command {
		t.Errorf("Decode: command got %v want %v", got.Command, hdr.Command)
	}
	if got.PayloadLength != hdr.PayloadLength {
		t.Errorf("Decode: payload length got %v want %v",
			got.PayloadLength, hdr.PayloadLength)
	}
	if got.Checksum != hdr.Checksum {
		t.Errorf("Decode: checksum got %x want %x", got.Checksum, hdr.Checksum)
	}
}

// TestHeaderDecodeShort ensures a truncated header surfaces an error.
func TestHeaderDecodeShort(t *testing.T) {
	var hdr wire.Header
	_, err := hdr.Decode(bytes.NewReader(make([]byte, wire.HeaderSize-1)))
	if err == nil {
		t.Errorf("Decode: expected error for truncated header, got nil")
	}
}

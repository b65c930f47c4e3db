package wire

import (
	"bytes"
	"encoding/binary"
	"io"
)

// HeaderSize is the number of bytes in a message header: 4 byte magic
// number, 12 byte command, 4 byte payload length, and 4 byte checksum.
const HeaderSize = 4 + CommandSize + 4 + 4

// Header is the fixed-size header that precedes every message's payload on
// the wire.
type Header struct {
	Magic         Network
	Command       [CommandSize]byte
	PayloadLength uint32
	Checksum      uint32
}

// commandString returns the command as a string with the trailing zero
// padding removed.
func (h *Header) commandString() string {
	return string(bytes.TrimRight(h.Command[:], "\x00"))
}

// CommandString is the exported form of commandString, for callers outside
// the package (such as channel.StreamLoader) that need to dispatch on the
// command name of an already-decoded header.
func (h *Header) CommandString() string {
	return h.commandString()
}

// Encode writes the header to w in the fixed little endian wire
// representation.
func (h *Header) Encode(w io.Writer) error {
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Magic))
	copy(buf[4:4+CommandSize], h.Command[:])
	binary.LittleEndian.PutUint32(buf[4+CommandSize:8+CommandSize], h.PayloadLength)
	binary.LittleEndian.PutUint32(buf[8+CommandSize:12+CommandSize], h.Checksum)

	_, err := w.Write(buf[:])
	return err
}

// Decode reads a header from r and returns the number of bytes read.
func (h *Header) Decode(r io.Reader) (int, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return n, err
	}

	h.Magic = Network(binary.LittleEndian.Uint32(buf[0:4]))
	copy(h.Command[:], buf[4:4+CommandSize])
	h.PayloadLength = binary.LittleEndian.Uint32(buf[4+CommandSize : 8+CommandSize])
	h.Checksum = binary.LittleEndian.Uint32(buf[8+CommandSize : 12+CommandSize])

	return n, nil
}

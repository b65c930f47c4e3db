package wire

import (
	"io"
)

// MsgPong implements the Message interface and represents a pong message
// which is sent in response to a ping message (MsgPing).
type MsgPong struct {
	Nonce uint64
}

// Decode decodes r using the protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgPong) Decode(r io.Reader) error {
	return readElement(r, &msg.Nonce)
}

// Encode encodes the receiver to w using the protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgPong) Encode(w io.Writer) error {
	return writeElement(w, msg.Nonce)
}

// Command returns the protocol command string for the message.  This is
// part of the Message interface implementation.
func (msg *MsgPong) Command() string {
	return CmdPong
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgPong) MaxPayloadLength() uint32 {
	return 8
}

// NewMsgPong returns a new pong message that conforms to the Message
// interface using the passed nonce.
func NewMsgPong(nonce uint64) *MsgPong {
	return &MsgPong{Nonce: nonce}
}

package wire

import (
	"io"
)

// MsgPing implements the Message interface and represents a ping message.
// It is used to ensure the connection to a remote peer is still valid.  If
// the remote peer does not respond with a pong (MsgPong) message using the
// same nonce in a reasonable amount of time, the connection is typically
// closed.
type MsgPing struct {
	Nonce uint64
}

// Decode decodes r using the protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgPing) Decode(r io.Reader) error {
	return readElement(r, &msg.Nonce)
}

// Encode encodes the receiver to w using the protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgPing) Encode(w io.Writer) error {
	return writeElement(w, msg.Nonce)
}

// Command returns the protocol command string for the message.  This is
// part of the Message interface implementation.
func (msg *MsgPing) Command() string {
	return CmdPing
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgPing) MaxPayloadLength() uint32 {
	return 8
}

// NewMsgPing returns a new ping message that conforms to the Message
// interface using the passed nonce.
func NewMsgPing(nonce uint64) *MsgPing {
	return &MsgPing{Nonce: nonce}
}

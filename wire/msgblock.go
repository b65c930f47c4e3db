package wire

import (
	"io"
)

// MaxBlockPayload is the maximum bytes a block payload may be.  As with
// MsgTx, the channel treats the block format as opaque.
const MaxBlockPayload = MaxMessagePayload

// MsgBlock implements the Message interface and represents a block
// message.  The payload is carried opaquely as raw bytes.
type MsgBlock struct {
	Data []byte
}

// Decode decodes r using the protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgBlock) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	msg.Data = data
	return nil
}

// Encode encodes the receiver to w using the protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgBlock) Encode(w io.Writer) error {
	_, err := w.Write(msg.Data)
	return err
}

// Command returns the protocol command string for the message.  This is
// part of the Message interface implementation.
func (msg *MsgBlock) Command() string {
	return CmdBlock
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgBlock) MaxPayloadLength() uint32 {
	return MaxBlockPayload
}

// NewMsgBlock returns a new block message that conforms to the Message
// interface.
func NewMsgBlock() *MsgBlock {
	return &MsgBlock{}
}

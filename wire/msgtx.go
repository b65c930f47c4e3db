package wire

import (
	"io"
)

// MaxTxPayload is the maximum bytes a transaction payload may be.  The
// channel only frames and dispatches tx messages; it does not parse the
// transaction format itself, so this package treats the payload as opaque.
const MaxTxPayload = MaxMessagePayload

// MsgTx implements the Message interface and represents a tx message.  The
// payload is carried opaquely as raw bytes; interpreting the transaction
// format is the concern of a layer above the channel.
type MsgTx struct {
	Data []byte
}

// Decode decodes r using the protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgTx) Decode(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	msg.Data = data
	return nil
}

// Encode encodes the receiver to w using the protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgTx) Encode(w io.Writer) error {
	_, err := w.Write(msg.Data)
	return err
}

// Command returns the protocol command string for the message.  This is
// part of the Message interface implementation.
func (msg *MsgTx) Command() string {
	return CmdTx
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgTx) MaxPayloadLength() uint32 {
	return MaxTxPayload
}

// NewMsgTx returns a new tx message that conforms to the Message interface.
func NewMsgTx() *MsgTx {
	return &MsgTx{}
}

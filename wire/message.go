package wire

import (
	"bytes"
	"fmt"
	"io"
)

// Message is an interface that describes a bitcoin-style message.  A type
// that implements Message has complete control over the representation of
// its data and may therefore contain additional or duplicate information as
// needed.
//
// This interface should be implemented by all supported messages.
type Message interface {
	Decode(r io.Reader) error
	Encode(w io.Writer) error
	Command() string
	MaxPayloadLength() uint32
}

// makeEmptyMessage creates a message of the appropriate concrete type based
// on the command.
func makeEmptyMessage(command string) (Message, error) {
	switch command {
	case CmdVersion:
		return &MsgVersion{}, nil
	case CmdVerAck:
		return &MsgVerAck{}, nil
	case CmdAddr:
		return &MsgAddr{}, nil
	case CmdGetAddr:
		return &MsgGetAddr{}, nil
	case CmdInv:
		return &MsgInv{}, nil
	case CmdGetData:
		return &MsgGetData{}, nil
	case CmdGetBlocks:
		return &MsgGetBlocks{}, nil
	case CmdTx:
		return &MsgTx{}, nil
	case CmdBlock:
		return &MsgBlock{}, nil
	case CmdPing:
		return &MsgPing{}, nil
	case CmdPong:
		return &MsgPong{}, nil
	default:
		return nil, messageError("makeEmptyMessage",
			fmt.Sprintf("unhandled command %q", command))
	}
}

// WriteMessageN writes a message to w including the necessary header
// information and returns the number of bytes written.
func WriteMessageN(w io.Writer, msg Message, net Network) (int, error) {
	totalBytes := 0

	var bw bytes.Buffer
	if err := msg.Encode(&bw); err != nil {
		return totalBytes, err
	}
	payload := bw.Bytes()
	lenp := len(payload)

	if uint32(lenp) > msg.MaxPayloadLength() {
		str := fmt.Sprintf("message payload is too large - encoded "+
			"%d bytes, but maximum message payload is %d bytes",
			lenp, msg.MaxPayloadLength())
		return totalBytes, messageError("WriteMessageN", str)
	}

	if lenp > MaxMessagePayload {
		str := fmt.Sprintf("message payload is too large - encoded "+
			"%d bytes, but maximum message payload size for "+
			"messages is %d bytes", lenp, MaxMessagePayload)
		return totalBytes, messageError("WriteMessageN", str)
	}

	hdr := Header{
		Magic:         net,
		PayloadLength: uint32(lenp),
		Checksum:      Checksum(payload),
	}
	copy(hdr.Command[:], []byte(msg.Command()))

	var hw bytes.Buffer
	if err := hdr.Encode(&hw); err != nil {
		return totalBytes, err
	}

	n, err := w.Write(hw.Bytes())
	totalBytes += n
	if err != nil {
		return totalBytes, err
	}

	n, err = w.Write(payload)
	totalBytes += n
	if err != nil {
		return totalBytes, err
	}

	return totalBytes, nil
}

// ReadMessageN reads, validates, and parses the next message from r and
// returns the number of bytes read, the message, the raw payload bytes, and
// an error, if any.
func ReadMessageN(r io.Reader, net Network) (int, Message, []byte, error) {
	totalBytes := 0

	var hdr Header
	n, err := hdr.Decode(r)
	totalBytes += n
	if err != nil {
		return totalBytes, nil, nil, err
	}

	if hdr.Magic != net {
		str := fmt.Sprintf("message from other network [%v]", hdr.Magic)
		return totalBytes, nil, nil, messageError("ReadMessageN", str)
	}

	command := hdr.commandString()

	msg, err := makeEmptyMessage(command)
	if err != nil {
		return totalBytes, nil, nil, err
	}

	if hdr.PayloadLength > msg.MaxPayloadLength() {
		str := fmt.Sprintf("payload exceeds max length - header "+
			"indicates %d bytes, but max payload size for "+
			"messages of type %v is %d", hdr.PayloadLength,
			command, msg.MaxPayloadLength())
		return totalBytes, nil, nil, messageError("ReadMessageN", str)
	}

	if hdr.PayloadLength > MaxMessagePayload {
		str := fmt.Sprintf("payload exceeds max length - header "+
			"indicates %d bytes, but max message payload is %d",
			hdr.PayloadLength, MaxMessagePayload)
		return totalBytes, nil, nil, messageError("ReadMessageN", str)
	}

	payload := make([]byte, hdr.PayloadLength)
	n, err = io.ReadFull(r, payload)
	totalBytes += n
	if err != nil {
		return totalBytes, nil, nil, err
	}

	checksum := Checksum(payload)
	if checksum != hdr.Checksum {
		str := fmt.Sprintf("payload checksum failed - header "+
			"indicates %x, but actual checksum is %x",
			hdr.Checksum, checksum)
		return totalBytes, nil, nil, messageError("ReadMessageN", str)
	}

	if err := msg.Decode(bytes.NewReader(payload)); err != nil {
		return totalBytes, nil, nil, err
	}

	return totalBytes, msg, payload, nil
}

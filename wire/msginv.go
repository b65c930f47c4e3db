package wire

import (
	"fmt"
	"io"
)

// MsgInv implements the Message interface and represents an inv message.
// It is used to advertise data, identified by inventory vectors, that is
// available on the sender's end.
//
// Use the AddInvVect function to build up the list of inventory vectors when
// sending an inv message to another peer.
type MsgInv struct {
	InvList []*InvVect
}

// AddInvVect adds an inventory vector to the message.
func (msg *MsgInv) AddInvVect(iv *InvVect) error {
	if len(msg.InvList)+1 > MaxInvPerMsg {
		str := fmt.Sprintf("too many inv vectors in message [max %v]",
			MaxInvPerMsg)
		return messageError("MsgInv.AddInvVect", str)
	}

	msg.InvList = append(msg.InvList, iv)
	return nil
}

// Decode decodes r using the protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgInv) Decode(r io.Reader) error {
	count, err := readVarInt(r)
	if err != nil {
		return err
	}

	if count > MaxInvPerMsg {
		str := fmt.Sprintf("too many inv vectors for message "+
			"[count %v, max %v]", count, MaxInvPerMsg)
		return messageError("MsgInv.Decode", str)
	}

	msg.InvList = make([]*InvVect, 0, count)
	for i := uint64(0); i < count; i++ {
		iv := InvVect{}
		if err := readInvVect(r, &iv); err != nil {
			return err
		}
		msg.AddInvVect(&iv)
	}
	return nil
}

// Encode encodes the receiver to w using the protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgInv) Encode(w io.Writer) error {
	count := len(msg.InvList)
	if count > MaxInvPerMsg {
		str := fmt.Sprintf("too many inv vectors for message "+
			"[count %v, max %v]", count, MaxInvPerMsg)
		return messageError("MsgInv.Encode", str)
	}

	if err := writeVarInt(w, uint64(count)); err != nil {
		return err
	}

	for _, iv := range msg.InvList {
		if err := writeInvVect(w, iv); err != nil {
			return err
		}
	}

	return nil
}

// Command returns the protocol command string for the message.  This is
// part of the Message interface implementation.
func (msg *MsgInv) Command() string {
	return CmdInv
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgInv) MaxPayloadLength() uint32 {
	return uint32(VarIntSerializeSize(MaxInvPerMsg)) +
		(MaxInvPerMsg * maxInvVectPayload)
}

// NewMsgInv returns a new inv message that conforms to the Message
// interface.  See MsgInv for details.
func NewMsgInv() *MsgInv {
	return &MsgInv{
		InvList: make([]*InvVect, 0, MaxInvPerMsg),
	}
}

package wire

import (
	"fmt"
	"io"
)

// MaxBlockLocatorsPerMsg is the maximum number of block locator hashes
// allowed per message.
const MaxBlockLocatorsPerMsg = 500

// MsgGetBlocks implements the Message interface and represents a getblocks
// message.  It is used to request a list of blocks starting after the last
// known hash in the locator until the provided stop hash is reached, or
// until the maximum number of blocks is reached.
//
// Set the HashStop field to the zero hash to request as many block hashes
// as possible.
type MsgGetBlocks struct {
	ProtocolVersion    uint32
	BlockLocatorHashes []*ShaHash
	HashStop           ShaHash
}

// AddBlockLocatorHash adds a new block locator hash to the message.
func (msg *MsgGetBlocks) AddBlockLocatorHash(hash *ShaHash) error {
	if len(msg.BlockLocatorHashes)+1 > MaxBlockLocatorsPerMsg {
		str := fmt.Sprintf("too many block locator hashes for "+
			"message [max %v]", MaxBlockLocatorsPerMsg)
		return messageError("MsgGetBlocks.AddBlockLocatorHash", str)
	}

	msg.BlockLocatorHashes = append(msg.BlockLocatorHashes, hash)
	return nil
}

// Decode decodes r using the protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgGetBlocks) Decode(r io.Reader) error {
	if err := readElement(r, &msg.ProtocolVersion); err != nil {
		return err
	}

	count, err := readVarInt(r)
	if err != nil {
		return err
	}

	if count > MaxBlockLocatorsPerMsg {
		str := fmt.Sprintf("too many block locator hashes for "+
			"message [count %v, max %v]", count, MaxBlockLocatorsPerMsg)
		return messageError("MsgGetBlocks.Decode", str)
	}

	msg.BlockLocatorHashes = make([]*ShaHash, 0, count)
	for i := uint64(0); i < count; i++ {
		hash := ShaHash{}
		if err := readElement(r, &hash); err != nil {
			return err
		}
		msg.AddBlockLocatorHash(&hash)
	}

	return readElement(r, &msg.HashStop)
}

// Encode encodes the receiver to w using the protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgGetBlocks) Encode(w io.Writer) error {
	count := len(msg.BlockLocatorHashes)
	if count > MaxBlockLocatorsPerMsg {
		str := fmt.Sprintf("too many block locator hashes for "+
			"message [count %v, max %v]", count, MaxBlockLocatorsPerMsg)
		return messageError("MsgGetBlocks.Encode", str)
	}

	if err := writeElement(w, msg.ProtocolVersion); err != nil {
		return err
	}

	if err := writeVarInt(w, uint64(count)); err != nil {
		return err
	}

	for _, hash := range msg.BlockLocatorHashes {
		if err := writeElement(w, hash); err != nil {
			return err
		}
	}

	return writeElement(w, &msg.HashStop)
}

// Command returns the protocol command string for the message.  This is
// part of the Message interface implementation.
func (msg *MsgGetBlocks) Command() string {
	return CmdGetBlocks
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgGetBlocks) MaxPayloadLength() uint32 {
	// Protocol version 4 bytes + num hashes (varInt) + max allowed hashes
	// + hash stop.
	return 4 + uint32(VarIntSerializeSize(MaxBlockLocatorsPerMsg)) +
		(MaxBlockLocatorsPerMsg * HashSize) + HashSize
}

// NewMsgGetBlocks returns a new getblocks message that conforms to the
// Message interface using the passed parameters and defaults for the
// remaining fields.
func NewMsgGetBlocks(hashStop *ShaHash) *MsgGetBlocks {
	return &MsgGetBlocks{
		ProtocolVersion:    ProtocolVersion,
		BlockLocatorHashes: make([]*ShaHash, 0, MaxBlockLocatorsPerMsg),
		HashStop:           *hashStop,
	}
}

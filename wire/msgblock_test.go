package wire_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/monetas/bmchannel/wire"
)

// TestBlockWire tests the MsgBlock encode and decode.
func TestBlockWire(t *testing.T) {
	msg := wire.NewMsgBlock()
	msg.Data = []byte{0x01, 0x02, 0x03, 0x04}

	if cmd := msg.Command(); cmd != "block" {
		t.Errorf("Command: got %v want %v", cmd, "block")
	}

	var buf bytes.Buffer
	if err := msg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var readMsg wire.MsgBlock
	if err := readMsg.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !reflect.DeepEqual(readMsg.Data, msg.Data) {
		t.Errorf("Decode: got %x want %x", readMsg.Data, msg.Data)
	}
}

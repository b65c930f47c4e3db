package wire_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/monetas/bmchannel/wire"
)

// TestGetData tests the MsgGetData API.
func TestGetData(t *testing.T) {
	msg := wire.NewMsgGetData()

	wantCmd := "getdata"
	if cmd := msg.Command(); cmd != wantCmd {
		t.Errorf("NewMsgGetData: wrong command - got %v want %v", cmd, wantCmd)
	}

	hash := wire.ShaHash{}
	iv := wire.NewInvVect(wire.InvTypeBlock, &hash)
	if err := msg.AddInvVect(iv); err != nil {
		t.Errorf("AddInvVect: %v", err)
	}
	if len(msg.InvList) != 1 {
		t.Errorf("AddInvVect: wrong len - got %v, want %v", len(msg.InvList), 1)
	}
}

// TestGetDataWire tests the MsgGetData encode and decode.
func TestGetDataWire(t *testing.T) {
	msg := wire.NewMsgGetData()
	hash := wire.ShaHash{}
	msg.AddInvVect(wire.NewInvVect(wire.InvTypeTx, &hash))

	var buf bytes.Buffer
	if err := msg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var readMsg wire.MsgGetData
	if err := readMsg.Decode(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !reflect.DeepEqual(readMsg.InvList, msg.InvList) {
		t.Errorf("Decode\n got: %s want: %s",
			spew.Sdump(readMsg.InvList), spew.Sdump(msg.InvList))
	}
}

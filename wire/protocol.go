package wire

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// ProtocolVersion is the latest protocol version this package supports.
	ProtocolVersion uint32 = 70002
)

// ServiceFlag identifies services supported by a peer.
type ServiceFlag uint64

const (
	// SFNodeNetwork is a flag used to indicate a peer is a full node.
	SFNodeNetwork ServiceFlag = 1 << iota
)

// Map of service flags back to their constant names for pretty printing.
var sfStrings = map[ServiceFlag]string{
	SFNodeNetwork: "SFNodeNetwork",
}

// String returns the ServiceFlag in human-readable form.
func (f ServiceFlag) String() string {
	// No flags are set.
	if f == 0 {
		return "0x0"
	}

	// Add individual bit flags.
	s := ""
	for flag, name := range sfStrings {
		if f&flag == flag {
			s += name + "|"
			f -= flag
		}
	}

	// Add any remaining flags which aren't accounted for as hex.
	s = strings.TrimRight(s, "|")
	if f != 0 {
		s += "|0x" + strconv.FormatUint(uint64(f), 16)
	}
	s = strings.TrimLeft(s, "|")
	return s
}

// Network represents which network a message's magic value belongs to. It is
// read off the wire header and compared against the channel's configured
// expectation (§3: "a received header with magic != expected_magic is fatal
// for the channel").
type Network uint32

// Constants used to indicate the network a message belongs to. They can also
// be used to seek to the next message when a stream's state is unknown, but
// this package does not provide that functionality since it's generally a
// better idea to simply disconnect clients that are misbehaving over TCP.
const (
	// MainNet represents the main network.
	MainNet Network = 0xd9b4bef9

	// TestNet represents a regression/test network sharing the wire format
	// but not interoperable with MainNet.
	TestNet Network = 0x0709110b
)

// netStrings is a map of networks back to their constant names for pretty
// printing.
var netStrings = map[Network]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
}

// String returns the Network in human-readable form.
func (n Network) String() string {
	if s, ok := netStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown Network (%d)", uint32(n))
}

package wire

import (
	"crypto/sha256"
	"encoding/binary"
)

// Sha256 returns the sha256 of the bytes.
func Sha256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// DoubleSha256 returns the sha256^2 of the bytes.
func DoubleSha256(b []byte) []byte {
	return Sha256(Sha256(b))
}

// Checksum returns the first four bytes of DoubleSha256(payload),
// interpreted as a little endian uint32.  It is placed in a message header
// to let the receiving side detect payload corruption before it is handed
// to a command's Decode.
func Checksum(payload []byte) uint32 {
	sum := DoubleSha256(payload)
	return binary.LittleEndian.Uint32(sum[0:4])
}

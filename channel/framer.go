// Originally derived from: channel_proxy::read_header / read_checksum /
// read_payload / handle_read_header / handle_read_checksum /
// handle_read_payload (channel_proxy.cpp).
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"bytes"
	"io"
	"net"

	"github.com/monetas/bmchannel/wire"
)

// frameResult is delivered from the reader goroutine back to the strand
// once a full frame (or a read failure) has been observed. The original
// channel_proxy issues three separate asio reads (header, checksum,
// payload) each with its own callback; a blocking Go reader goroutine has
// no equivalent need to interleave those stages with other work, so
// runFramer reads the fixed 24-byte header (which already carries the
// checksum word, see wire.Header) and the payload as two blocking reads
// instead of three, while preserving the original's read-order and
// validation sequence: magic, then payload length bound, then payload,
// then checksum.
type frameResult struct {
	header  wire.Header
	payload []byte
	err     error
}

// runFramer reads frames from conn, one at a time, and sends each completed
// frame (or the error that ended the loop) to out. It is meant to run on a
// dedicated goroutine; the channel's strand consumes out and decides what
// to do with each result, including whether to keep reading.
//
// The inactivity deadline must rearm on every successful read step, not
// just once per full frame: a header that arrives promptly but whose
// payload trickles in slowly is still a live connection. onHeaderRead is
// invoked synchronously, once the header has decoded and passed the magic
// and length checks, before the payload read begins, so the caller can
// rearm inactivity for that step independently of the eventual full-frame
// rearm in handleFrame.
func runFramer(conn net.Conn, magic wire.Network, maxPayload uint32, out chan<- frameResult, onHeaderRead func(wire.Header)) {
	for {
		var hdr wire.Header
		if _, err := hdr.Decode(conn); err != nil {
			out <- frameResult{err: wrapTransport(err)}
			return
		}

		if hdr.Magic != magic {
			out <- frameResult{err: ErrBadStream}
			return
		}

		if hdr.PayloadLength > maxPayload || hdr.PayloadLength > wire.MaxMessagePayload {
			out <- frameResult{err: ErrBadStream}
			return
		}

		if onHeaderRead != nil {
			onHeaderRead(hdr)
		}

		payload := make([]byte, hdr.PayloadLength)
		if _, err := io.ReadFull(conn, payload); err != nil {
			out <- frameResult{header: hdr, err: wrapTransport(err)}
			return
		}

		if wire.Checksum(payload) != hdr.Checksum {
			out <- frameResult{header: hdr, err: ErrBadStream}
			return
		}

		out <- frameResult{header: hdr, payload: payload}
	}
}

// encodeFrame serializes header followed by payload into a single buffer
// suitable for one atomic write, matching
// channel_proxy::do_send_raw's header.to_data() + extend_data(payload).
func encodeFrame(header wire.Header, payload []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := header.Encode(&buf); err != nil {
		return nil, err
	}
	buf.Write(payload)
	return buf.Bytes(), nil
}

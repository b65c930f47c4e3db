// Originally derived from: the timeout struct channel_proxy::channel_proxy
// takes by reference (channel_proxy.cpp) and bmd's own config.go pattern of
// a small struct of tunables passed into a constructor.
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"time"

	"github.com/monetas/bmchannel/wire"
)

// Config carries the tunables a Channel needs beyond the connected socket
// itself. All three durations are required; Channel does not supply
// silent defaults for them the way the teacher's pingTimeoutMinutes
// constant did, because a channel with the wrong timeout shape for its
// protocol is a configuration bug that should surface immediately rather
// than fail open.
type Config struct {
	// Magic is the network constant every inbound header must match.
	Magic wire.Network

	// Expiration is the channel's total lifetime; the armed duration is
	// pseudo-randomized +-40% around this value each time it is (re)armed.
	Expiration time.Duration

	// Inactivity is the maximum silence allowed between successful reads.
	Inactivity time.Duration

	// Revival is rearmed only by an explicit ResetRevival call; its
	// semantics belong entirely to the consumer's revival handler.
	Revival time.Duration

	// MaxPayload bounds a single message's payload length. Zero selects
	// wire.MaxMessagePayload.
	MaxPayload uint32
}

func (c Config) maxPayload() uint32 {
	if c.MaxPayload == 0 {
		return wire.MaxMessagePayload
	}
	return c.MaxPayload
}

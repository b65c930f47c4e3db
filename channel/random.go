// Originally derived from: bmpeer/sendqueue.go trickle-timer conventions.
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"math/rand"
	"time"
)

// jitterFraction is the fraction of the expiration duration that the
// expiration deadline is allowed to drift by, in either direction, each
// time it is armed. A fresh random offset every arming desynchronizes many
// channels that were all started around the same time.
const jitterFraction = 0.4

// newRand returns a *rand.Rand seeded from the current time, local to a
// single Channel. *rand.Rand is not safe for concurrent use, so it must
// never be shared across connections the way a package-level var would be;
// each Channel gets its own, the same way the teacher's peer.PushAddrMsg and
// send.queueHandler each construct a connection-local source rather than
// sharing one.
func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// pseudoRandomize returns a duration within +-jitterFraction of d.
func pseudoRandomize(rng *rand.Rand, d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	delta := float64(d) * jitterFraction
	offset := (rng.Float64()*2 - 1) * delta
	return d + time.Duration(offset)
}

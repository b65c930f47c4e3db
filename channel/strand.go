// Originally derived from: bmpeer/sendqueue.go's queueHandler/outHandler
// goroutine-draining-a-channel pattern and peer.Peer.inHandler's
// single-goroutine-owns-state idiom — the closest the teacher's code comes
// to a boost::asio strand, which Go has no direct primitive for.
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

// strandQueueSize bounds the number of posted operations waiting to run.
// Sized generously since a Channel's own operations (reads, writes, timer
// callbacks, Subscribe, Stop) are never posted in tight loops; overflow
// indicates a caller storm well beyond one connection's normal traffic.
const strandQueueSize = 64

// strand is a single-goroutine execution context: every function posted to
// it runs to completion, in posting order, before the next one starts. It
// is the Go stand-in for the teacher's asio strand — see the package
// comment in channel.go.
type strand struct {
	work chan func()
	done chan struct{}
}

// newStrand creates a strand without starting any goroutine. The caller runs
// run (typically with go s.run()) to begin draining; stop closes done to make
// run return.
func newStrand() *strand {
	return &strand{
		work: make(chan func(), strandQueueSize),
		done: make(chan struct{}),
	}
}

// run drains the work channel until done is closed. It must be called from
// exactly one goroutine for the lifetime of the strand.
func (s *strand) run() {
	for {
		select {
		case fn := <-s.work:
			fn()
		case <-s.done:
			s.drain()
			return
		}
	}
}

// drain empties any work posted between the decision to stop and done
// being observed, so posters blocked on a full channel are not stranded.
func (s *strand) drain() {
	for {
		select {
		case fn := <-s.work:
			fn()
		default:
			return
		}
	}
}

// post enqueues fn to run on the strand goroutine. Safe to call from any
// goroutine, including the strand's own (in which case fn runs after the
// caller returns to the loop).
func (s *strand) post(fn func()) {
	select {
	case s.work <- fn:
	case <-s.done:
	}
}

// sync posts fn and blocks until it has run. If the strand has already
// stopped, fn may never run; sync returns as soon as that is known rather
// than blocking forever.
func (s *strand) sync(fn func()) {
	done := make(chan struct{})
	s.post(func() {
		fn()
		close(done)
	})
	select {
	case <-done:
	case <-s.done:
	}
}

// stop signals run to return after draining any pending work.
func (s *strand) stop() {
	close(s.done)
}

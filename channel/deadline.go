// Originally derived from: peer/connection.go's idleTimer (time.AfterFunc
// reset-on-activity pattern) and channel_proxy.cpp's expiration_/
// inactivity_/revival_ deadline trio.
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"sync/atomic"
	"time"
)

// deadlineHandler is invoked when a Deadline fires or is canceled. ec is
// either nil (fired) or errDeadlineCanceled (canceled/superseded); use
// canceled(ec) rather than comparing directly.
type deadlineHandler func(ec error)

// Deadline is a cancellable one-shot timer. Its handler fires on the
// strand supplied to NewDeadline, not on the timer's own goroutine, so deadline
// callbacks are always serialized with the rest of the channel's state.
//
// Deadline methods are called only from the owning Channel's strand
// goroutine; the generation counter exists to make the timer's own
// goroutine, which runs outside the strand, safe to race against.
type Deadline struct {
	defaultDuration time.Duration
	post            func(func())

	generation uint64 // atomic; bumped on every Start/Cancel
	timer      *time.Timer
	handler    deadlineHandler
}

// NewDeadline returns a Deadline whose default Start duration is d. post is
// normally a strand's dispatch function, so the handler always runs
// serialized with the rest of the channel's operations.
func NewDeadline(d time.Duration, post func(func())) *Deadline {
	return &Deadline{defaultDuration: d, post: post}
}

// Start arms the timer for duration (or the stored default if duration is
// omitted). Starting an already-armed Deadline is equivalent to
// cancel-then-arm: if the previous timer had not yet fired, its handler
// observes canceled(ec); the generation bump ensures a fire that was
// already in flight when Start was called is ignored rather than invoking
// the new handler early.
func (d *Deadline) Start(h deadlineHandler, duration ...time.Duration) {
	dur := d.defaultDuration
	if len(duration) > 0 {
		dur = duration[0]
	}

	d.supersede()

	gen := atomic.AddUint64(&d.generation, 1)
	d.handler = h
	d.timer = time.AfterFunc(dur, func() {
		d.post(func() {
			if atomic.LoadUint64(&d.generation) != gen {
				return
			}
			h(nil)
		})
	})
}

// Cancel transitions an armed timer to canceled. Idempotent; safe to call
// after the timer has already fired or when it was never started.
func (d *Deadline) Cancel() {
	d.supersede()
}

// supersede stops any currently armed timer, bumps the generation so an
// in-flight fire is ignored, and — if the outgoing timer had not already
// fired — notifies its handler with errDeadlineCanceled.
func (d *Deadline) supersede() {
	if d.timer == nil {
		return
	}

	stopped := d.timer.Stop()
	atomic.AddUint64(&d.generation, 1)

	prev := d.handler
	d.handler = nil
	d.timer = nil

	if stopped && prev != nil {
		d.post(func() {
			prev(errDeadlineCanceled)
		})
	}
}

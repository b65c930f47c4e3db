// Originally derived from: bmpeer/sendqueue.go queueing conventions and the
// one-shot notification pattern described by channel_proxy::subscribe /
// channel_proxy::notify_stop.
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

// handler is a callback registered on a Subscriber[T]. It is invoked with
// the error code and value delivered by the next Relay.
type handler[T any] func(ec error, value T)

// Subscriber is a one-shot, multi-consumer notification queue for a single
// value type T. It has no Unsubscribe: the only way to release a pending
// handler is for a Relay to fire. This is deliberate — the stop protocol
// relies on it to guarantee every waiter is drained exactly once.
//
// Subscriber is not safe for concurrent use; every method is called only
// from the owning Channel's strand goroutine.
type Subscriber[T any] struct {
	pending []handler[T]
	post    func(func())
}

// NewSubscriber returns a Subscriber[T] whose Relay schedules each handler
// via post rather than invoking it inline. post is normally a strand's
// dispatch function so that handler invocation stays serialized with every
// other strand operation.
func NewSubscriber[T any](post func(func())) *Subscriber[T] {
	return &Subscriber[T]{post: post}
}

// Subscribe enqueues handler. Subscription is synchronous: a handler
// registered before the next Relay is guaranteed to observe it, because
// Subscribe and Relay both run only on the strand.
func (s *Subscriber[T]) Subscribe(h func(ec error, value T)) {
	s.pending = append(s.pending, h)
}

// Relay snapshots the currently pending handlers, clears them, and
// schedules each to run with (ec, value). Handlers registered after this
// snapshot is taken are not invoked by this Relay; they wait for the next
// one.
func (s *Subscriber[T]) Relay(ec error, value T) {
	if len(s.pending) == 0 {
		return
	}
	snapshot := s.pending
	s.pending = nil

	for _, h := range snapshot {
		h := h
		s.post(func() {
			h(ec, value)
		})
	}
}

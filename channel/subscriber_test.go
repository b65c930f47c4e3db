// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"errors"
	"testing"
)

// syncPost runs posted functions inline, which is enough to exercise
// Subscriber's snapshot-then-clear semantics without a real strand
// goroutine.
func syncPost(fn func()) {
	fn()
}

func TestSubscriberRelayDeliversToPendingOnly(t *testing.T) {
	sub := NewSubscriber[int](syncPost)

	var first, second int
	firstSeen, secondSeen := false, false

	sub.Subscribe(func(ec error, v int) {
		first = v
		firstSeen = true
	})

	sub.Relay(nil, 7)

	if !firstSeen || first != 7 {
		t.Fatalf("expected first handler to observe 7, got %v (seen=%v)", first, firstSeen)
	}

	// A second Relay must not re-invoke the first handler.
	sub.Subscribe(func(ec error, v int) {
		second = v
		secondSeen = true
	})
	sub.Relay(nil, 9)

	if !secondSeen || second != 9 {
		t.Fatalf("expected second handler to observe 9, got %v (seen=%v)", second, secondSeen)
	}
	if first != 7 {
		t.Fatalf("first handler's captured value changed: %v", first)
	}
}

func TestSubscriberLateSubscribeWaitsForNextRelay(t *testing.T) {
	sub := NewSubscriber[string](syncPost)

	sub.Relay(nil, "missed") // no subscribers yet; must be a no-op

	var got string
	sub.Subscribe(func(ec error, v string) {
		got = v
	})

	sub.Relay(nil, "observed")
	if got != "observed" {
		t.Fatalf("expected %q, got %q", "observed", got)
	}
}

func TestSubscriberRelayCarriesErrorCode(t *testing.T) {
	sub := NewSubscriber[int](syncPost)

	sentinel := errors.New("boom")
	var gotErr error

	sub.Subscribe(func(ec error, v int) {
		gotErr = ec
	})
	sub.Relay(sentinel, 0)

	if !errors.Is(gotErr, sentinel) {
		t.Fatalf("expected sentinel error, got %v", gotErr)
	}
}

func TestSubscriberMultipleHandlersAllRun(t *testing.T) {
	sub := NewSubscriber[int](syncPost)

	count := 0
	for i := 0; i < 5; i++ {
		sub.Subscribe(func(ec error, v int) {
			count++
		})
	}
	sub.Relay(nil, 1)

	if count != 5 {
		t.Fatalf("expected all 5 handlers to run, got %d", count)
	}
}

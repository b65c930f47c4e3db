// Originally derived from: rpcserver.go's evtMgr wiring
// (eventemitter.New/On/Emit/RemoveListeners).
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import "github.com/ishbir/eventemitter"

// Lifecycle event names. These are purely observational diagnostics —
// unlike the typed Subscriber[T] fabric, a missed Lifecycle event carries
// no delivery guarantee and no application logic may depend on one
// arriving.
const (
	EventStarted = "started"
	EventStopped = "stopped"
	EventTimeout = "timeout"
)

// Lifecycle is a secondary, string-keyed diagnostics emitter for channel
// state transitions, deliberately kept separate from the closed, generic
// Subscriber[T] message-delivery fabric: Subscriber[T] is for messages an
// application must not miss, Lifecycle is for log/metric consumers that
// can tolerate losing an event.
type Lifecycle struct {
	emitter *eventemitter.EventEmitter
}

// NewLifecycle returns a ready-to-use Lifecycle emitter.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{emitter: eventemitter.New()}
}

// OnStarted registers a listener for EventStarted under id, so it can later
// be removed via RemoveListener.
func (l *Lifecycle) OnStarted(id string, handler func(addr string)) {
	l.emitter.On(EventStarted, handler, id)
}

// OnStopped registers a listener for EventStopped under id.
func (l *Lifecycle) OnStopped(id string, handler func(ec error)) {
	l.emitter.On(EventStopped, handler, id)
}

// OnTimeout registers a listener for EventTimeout under id.
func (l *Lifecycle) OnTimeout(id string, handler func(reason string)) {
	l.emitter.On(EventTimeout, handler, id)
}

// RemoveListener de-registers the listener previously registered under id
// for evt.
func (l *Lifecycle) RemoveListener(evt string, id string) {
	l.emitter.RemoveListener(evt, id)
}

// emitStarted fires EventStarted with the channel's remote address.
func (l *Lifecycle) emitStarted(addr string) {
	l.emitter.Emit(EventStarted, addr)
}

// emitStopped fires EventStopped with the error that caused the stop.
func (l *Lifecycle) emitStopped(ec error) {
	l.emitter.Emit(EventStopped, ec)
}

// emitTimeout fires EventTimeout naming which deadline fired.
func (l *Lifecycle) emitTimeout(reason string) {
	l.emitter.Emit(EventTimeout, reason)
}

// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package channel

import (
	"sync"
	"testing"
	"time"
)

// postingStrand is a minimal real strand (goroutine draining a channel) used
// so Deadline's handler invocations are exercised the way they run in
// production: on a single goroutine, asynchronously from Start/Cancel.
type postingStrand struct {
	s *strand
}

func newPostingStrand() *postingStrand {
	s := newStrand()
	go s.run()
	return &postingStrand{s: s}
}

func (p *postingStrand) post(fn func()) { p.s.post(fn) }
func (p *postingStrand) stop()          { p.s.stop() }

func TestDeadlineFires(t *testing.T) {
	p := newPostingStrand()
	defer p.stop()

	d := NewDeadline(time.Hour, p.post)

	var wg sync.WaitGroup
	wg.Add(1)
	var gotErr error
	d.Start(func(ec error) {
		gotErr = ec
		wg.Done()
	}, 10*time.Millisecond)

	wg.Wait()
	if canceled(gotErr) {
		t.Fatalf("expected a real fire, got canceled")
	}
}

func TestDeadlineCancelBeforeFire(t *testing.T) {
	p := newPostingStrand()
	defer p.stop()

	d := NewDeadline(time.Hour, p.post)

	var wg sync.WaitGroup
	wg.Add(1)
	var gotErr error
	d.Start(func(ec error) {
		gotErr = ec
		wg.Done()
	}, time.Hour)

	d.Cancel()
	wg.Wait()

	if !canceled(gotErr) {
		t.Fatalf("expected canceled status, got %v", gotErr)
	}
}

func TestDeadlineRearmSupersedesPreviousHandler(t *testing.T) {
	p := newPostingStrand()
	defer p.stop()

	d := NewDeadline(time.Hour, p.post)

	var wg sync.WaitGroup
	wg.Add(2)

	var firstEc, secondEc error
	d.Start(func(ec error) {
		firstEc = ec
		wg.Done()
	}, time.Hour)

	d.Start(func(ec error) {
		secondEc = ec
		wg.Done()
	}, 10*time.Millisecond)

	wg.Wait()

	if !canceled(firstEc) {
		t.Fatalf("expected first handler to see canceled, got %v", firstEc)
	}
	if canceled(secondEc) {
		t.Fatalf("expected second handler to see a real fire, got canceled")
	}
}

func TestDeadlineCancelIsIdempotent(t *testing.T) {
	p := newPostingStrand()
	defer p.stop()

	d := NewDeadline(time.Hour, p.post)
	d.Cancel()
	d.Cancel()

	d.Start(func(ec error) {}, time.Hour)
	d.Cancel()
	d.Cancel()
}

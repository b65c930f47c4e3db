// Originally derived from: channel_proxy.cpp (constructor, start,
// do_stop, clear_subscriptions, clear_timers, start_timers, subscribe_*,
// do_send/do_send_raw) and the goroutine-ownership idiom of
// bmpeer/sendqueue.go and peer.Peer.inHandler.
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package channel implements the per-connection state machine that frames,
// validates, demultiplexes, and emits Bitcoin-style wire messages over a
// single duplex byte stream, while enforcing three independent liveness
// timers and a multi-subscriber notification fabric.
//
// Go has no direct equivalent of a boost::asio strand, so every
// state-mutating operation here is posted to a single long-lived goroutine
// (the strand) that drains a buffered chan func() — see strand.go. That
// goroutine is the only place Channel's fields are read or written, aside
// from the atomic stopped flag, which a foreign goroutine must be able to
// check without a round trip through the strand.
package channel

import (
	"bytes"
	"io"
	"math/rand"
	"net"
	"sync"
	"sync/atomic"

	"github.com/btcsuite/btclog"
	"github.com/monetas/bmchannel/wire"
)

// rawMessage is the value type delivered to the raw subscriber: the parsed
// header alongside the still-encoded payload bytes, mirroring
// channel_proxy::raw_subscriber_'s (header, data_chunk) pair.
type rawMessage struct {
	header  wire.Header
	payload []byte
}

// writeRequest is one outbound frame queued for the writer goroutine.
type writeRequest struct {
	data    []byte
	handler func(error)
}

// Channel is the top-level orchestrator: it owns the socket, the three
// deadlines, the subscriber fabric, the framer, and the shutdown protocol.
// A Channel is created with an already-connected net.Conn and is used only
// through its exported methods, which are all safe for concurrent use from
// any number of goroutines.
type Channel struct {
	conn net.Conn
	cfg  Config
	log  btclog.Logger

	strand     *strand
	frames     chan frameResult
	writeQueue chan writeRequest
	wg         sync.WaitGroup
	started    bool // strand-only

	rng *rand.Rand // strand-only; jitters the expiration deadline

	stopped int32 // atomic

	expiration     *Deadline
	inactivity     *Deadline
	revival        *Deadline
	revivalHandler func(ec error) // strand-only

	loader    *StreamLoader
	lifecycle *Lifecycle

	versionSub   *Subscriber[*wire.MsgVersion]
	verackSub    *Subscriber[*wire.MsgVerAck]
	addrSub      *Subscriber[*wire.MsgAddr]
	getAddrSub   *Subscriber[*wire.MsgGetAddr]
	invSub       *Subscriber[*wire.MsgInv]
	getDataSub   *Subscriber[*wire.MsgGetData]
	getBlocksSub *Subscriber[*wire.MsgGetBlocks]
	txSub        *Subscriber[*wire.MsgTx]
	blockSub     *Subscriber[*wire.MsgBlock]
	pingSub      *Subscriber[*wire.MsgPing]
	pongSub      *Subscriber[*wire.MsgPong]
	rawSub       *Subscriber[rawMessage]
	stopSub      *Subscriber[struct{}]
}

// NewChannel wraps conn in a Channel using cfg for its deadlines and magic
// value. The channel does not read or write conn until Start is called.
func NewChannel(conn net.Conn, cfg Config, log btclog.Logger) *Channel {
	c := &Channel{
		conn:       conn,
		cfg:        cfg,
		log:        log,
		strand:     newStrand(),
		frames:     make(chan frameResult, 1),
		writeQueue: make(chan writeRequest, strandQueueSize),
		loader:     NewStreamLoader(),
		lifecycle:  NewLifecycle(),
		rng:        newRand(),
	}

	c.expiration = NewDeadline(cfg.Expiration, c.strand.post)
	c.inactivity = NewDeadline(cfg.Inactivity, c.strand.post)
	c.revival = NewDeadline(cfg.Revival, c.strand.post)

	c.versionSub = NewSubscriber[*wire.MsgVersion](c.strand.post)
	c.verackSub = NewSubscriber[*wire.MsgVerAck](c.strand.post)
	c.addrSub = NewSubscriber[*wire.MsgAddr](c.strand.post)
	c.getAddrSub = NewSubscriber[*wire.MsgGetAddr](c.strand.post)
	c.invSub = NewSubscriber[*wire.MsgInv](c.strand.post)
	c.getDataSub = NewSubscriber[*wire.MsgGetData](c.strand.post)
	c.getBlocksSub = NewSubscriber[*wire.MsgGetBlocks](c.strand.post)
	c.txSub = NewSubscriber[*wire.MsgTx](c.strand.post)
	c.blockSub = NewSubscriber[*wire.MsgBlock](c.strand.post)
	c.pingSub = NewSubscriber[*wire.MsgPing](c.strand.post)
	c.pongSub = NewSubscriber[*wire.MsgPong](c.strand.post)
	c.rawSub = NewSubscriber[rawMessage](c.strand.post)
	c.stopSub = NewSubscriber[struct{}](c.strand.post)

	addRelay(c.loader, wire.CmdVersion, c.versionSub, func() *wire.MsgVersion { return &wire.MsgVersion{} })
	addRelay(c.loader, wire.CmdVerAck, c.verackSub, func() *wire.MsgVerAck { return &wire.MsgVerAck{} })
	addRelay(c.loader, wire.CmdAddr, c.addrSub, func() *wire.MsgAddr { return &wire.MsgAddr{} })
	addRelay(c.loader, wire.CmdGetAddr, c.getAddrSub, func() *wire.MsgGetAddr { return &wire.MsgGetAddr{} })
	addRelay(c.loader, wire.CmdInv, c.invSub, func() *wire.MsgInv { return wire.NewMsgInv() })
	addRelay(c.loader, wire.CmdGetData, c.getDataSub, func() *wire.MsgGetData { return wire.NewMsgGetData() })
	addRelay(c.loader, wire.CmdGetBlocks, c.getBlocksSub, func() *wire.MsgGetBlocks { return wire.NewMsgGetBlocks(&wire.ShaHash{}) })
	addRelay(c.loader, wire.CmdTx, c.txSub, func() *wire.MsgTx { return wire.NewMsgTx() })
	addRelay(c.loader, wire.CmdBlock, c.blockSub, func() *wire.MsgBlock { return wire.NewMsgBlock() })
	addRelay(c.loader, wire.CmdPing, c.pingSub, func() *wire.MsgPing { return wire.NewMsgPing(0) })
	addRelay(c.loader, wire.CmdPong, c.pongSub, func() *wire.MsgPong { return wire.NewMsgPong(0) })

	go c.strand.run()

	return c
}

// addRelay registers command with loader so that a successfully decoded
// payload is relayed on sub with a nil error, and a decode failure is
// relayed as ErrBadStream with T's zero value — mirroring
// channel_proxy::establish_relay, one call per supported message variant.
func addRelay[T wire.Message](loader *StreamLoader, command string, sub *Subscriber[T], empty func() T) {
	loader.Add(command, func(r io.Reader) {
		msg := empty()
		if err := msg.Decode(r); err != nil {
			var zero T
			sub.Relay(ErrBadStream, zero)
			return
		}
		sub.Relay(nil, msg)
	})
}

// isStopped reports whether the channel has already shut down. It is the
// one field any goroutine may read without going through the strand.
func (c *Channel) isStopped() bool {
	return atomic.LoadInt32(&c.stopped) != 0
}

// Start is idempotent: the first call begins the header read loop and arms
// all three deadlines; later calls, or a call after Stop, are no-ops.
func (c *Channel) Start() {
	c.strand.sync(func() {
		if c.started || c.isStopped() {
			return
		}
		c.started = true

		c.wg.Add(3)
		go c.runReader()
		go c.forwardFrames()
		go c.runWriter()

		c.startTimers()
		c.lifecycle.emitStarted(c.Address())
	})
}

// startTimers arms all three deadlines, matching
// channel_proxy::start_timers.
func (c *Channel) startTimers() {
	c.expiration.Start(c.onExpiration, pseudoRandomize(c.rng, c.cfg.Expiration))
	c.inactivity.Start(c.onInactivity, c.cfg.Inactivity)
	c.revival.Start(c.onRevival, c.cfg.Revival)
}

func (c *Channel) onExpiration(ec error) {
	if c.isStopped() || canceled(ec) {
		return
	}
	c.lifecycle.emitTimeout("expiration")
	c.doStop(ErrChannelTimeout)
}

func (c *Channel) onInactivity(ec error) {
	if c.isStopped() || canceled(ec) {
		return
	}
	c.lifecycle.emitTimeout("inactivity")
	c.doStop(ErrChannelTimeout)
}

func (c *Channel) onRevival(ec error) {
	if c.isStopped() || canceled(ec) {
		return
	}
	if c.revivalHandler != nil {
		c.revivalHandler(ec)
	}
}

// ResetRevival rearms the revival deadline from now. No-op after stop.
func (c *Channel) ResetRevival() {
	c.strand.post(func() {
		if c.isStopped() {
			return
		}
		c.revival.Start(c.onRevival, c.cfg.Revival)
	})
}

// SetRevivalHandler installs or replaces the handler invoked when the
// revival deadline fires. No-op after stop.
func (c *Channel) SetRevivalHandler(h func(ec error)) {
	c.strand.post(func() {
		if c.isStopped() {
			return
		}
		c.revivalHandler = h
	})
}

// Address returns the channel's remote endpoint, or an empty string if the
// socket cannot report one.
func (c *Channel) Address() string {
	addr := c.conn.RemoteAddr()
	if addr == nil {
		return ""
	}
	return addr.String()
}

// Stop schedules an asynchronous shutdown on the strand. Safe to call any
// number of times and from any goroutine; every call after the first is a
// no-op.
func (c *Channel) Stop(ec error) {
	c.strand.post(func() {
		c.doStop(ec)
	})
}

// doStop runs the one-shot shutdown protocol described in §4.5: cancel
// timers, shutter the socket, and fan out a terminal notification to every
// subscriber. It must only ever run on the strand.
func (c *Channel) doStop(ec error) {
	if c.isStopped() {
		return
	}
	atomic.StoreInt32(&c.stopped, 1)

	c.expiration.Cancel()
	c.inactivity.Cancel()
	c.revival.Cancel()
	c.revivalHandler = nil

	shutdownConn(c.conn)
	close(c.writeQueue)

	c.versionSub.Relay(ErrChannelStopped, nil)
	c.verackSub.Relay(ErrChannelStopped, nil)
	c.addrSub.Relay(ErrChannelStopped, nil)
	c.getAddrSub.Relay(ErrChannelStopped, nil)
	c.invSub.Relay(ErrChannelStopped, nil)
	c.getDataSub.Relay(ErrChannelStopped, nil)
	c.getBlocksSub.Relay(ErrChannelStopped, nil)
	c.txSub.Relay(ErrChannelStopped, nil)
	c.blockSub.Relay(ErrChannelStopped, nil)
	c.pingSub.Relay(ErrChannelStopped, nil)
	c.pongSub.Relay(ErrChannelStopped, nil)
	c.rawSub.Relay(ec, rawMessage{})
	c.stopSub.Relay(ec, struct{}{})

	c.lifecycle.emitStopped(ec)

	// The strand keeps draining until every goroutine we own has finished,
	// so a write completion callback already in flight when Stop was
	// called is still delivered instead of silently dropped.
	go func() {
		c.wg.Wait()
		c.strand.stop()
	}()
}

// shutdownConn shutters both directions of conn where the concrete type
// supports it, then closes it; all errors are swallowed, matching
// channel_proxy::do_stop's treatment of the boost::asio shutdown/close pair.
func shutdownConn(conn net.Conn) {
	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.CloseRead()
		tcp.CloseWrite()
	}
	conn.Close()
}

// runReader drains the connection through runFramer until it fails, then
// closes c.frames so forwardFrames can exit in turn.
func (c *Channel) runReader() {
	defer c.wg.Done()
	defer close(c.frames)
	runFramer(c.conn, c.cfg.Magic, c.cfg.maxPayload(), c.frames, c.onHeaderRead)
}

// onHeaderRead rearms inactivity as soon as a header has been read and
// validated, independently of the full-frame rearm in handleFrame, so a
// slow-trickling payload does not cost a connection whose header arrived
// well within the inactivity window. Called from the reader goroutine;
// posts onto the strand rather than touching c.inactivity directly.
func (c *Channel) onHeaderRead(wire.Header) {
	c.strand.post(func() {
		if c.isStopped() {
			return
		}
		c.inactivity.Start(c.onInactivity, c.cfg.Inactivity)
	})
}

// forwardFrames posts each frame result from the reader goroutine onto the
// strand as its own operation, so frame handling is serialized with every
// other state-mutating call the same way Subscribe and Stop are.
func (c *Channel) forwardFrames() {
	defer c.wg.Done()
	for r := range c.frames {
		r := r
		c.strand.post(func() {
			c.handleFrame(r)
		})
	}
}

// runWriter is the sole writer of c.conn; draining writeQueue one request
// at a time is what gives SendRaw its "at most one write outstanding"
// guarantee without needing a lock.
func (c *Channel) runWriter() {
	defer c.wg.Done()
	for req := range c.writeQueue {
		_, err := c.conn.Write(req.data)
		handler := req.handler
		wrapped := wrapTransport(err)
		c.strand.post(func() {
			if handler != nil {
				handler(wrapped)
			}
		})
	}
}

// handleFrame processes one successfully- or unsuccessfully-read frame.
// Runs on the strand.
func (c *Channel) handleFrame(r frameResult) {
	if c.isStopped() {
		return
	}

	if r.err != nil {
		c.doStop(r.err)
		return
	}

	c.inactivity.Start(c.onInactivity, c.cfg.Inactivity)

	c.rawSub.Relay(nil, rawMessage{header: r.header, payload: r.payload})

	command := r.header.CommandString()
	if !c.loader.Load(command, bytes.NewReader(r.payload)) {
		c.log.Debugf("%v", wrongCommandErr(command))
	}
}

// SendRaw serializes header followed by payload and writes it atomically;
// handler is invoked on completion. Writes are serialized through the
// writer goroutine to prevent interleaving of two outbound frames.
func (c *Channel) SendRaw(header wire.Header, payload []byte, handler func(error)) {
	c.strand.post(func() {
		if c.isStopped() {
			if handler != nil {
				handler(ErrChannelStopped)
			}
			return
		}

		frame, err := encodeFrame(header, payload)
		if err != nil {
			if handler != nil {
				handler(err)
			}
			return
		}

		c.writeQueue <- writeRequest{data: frame, handler: handler}
	})
}

// SendMessage is a convenience wrapper over SendRaw for callers that
// already have a typed wire.Message: it encodes the payload, builds the
// matching header (magic, command, length, checksum), and sends both in
// one atomic write.
func (c *Channel) SendMessage(msg wire.Message, handler func(error)) {
	var buf bytes.Buffer
	if err := msg.Encode(&buf); err != nil {
		if handler != nil {
			handler(err)
		}
		return
	}
	payload := buf.Bytes()

	header := wire.Header{
		Magic:         c.cfg.Magic,
		PayloadLength: uint32(len(payload)),
		Checksum:      wire.Checksum(payload),
	}
	copy(header.Command[:], []byte(msg.Command()))

	c.SendRaw(header, payload, handler)
}

// subscribe registers h on sub unless the channel is already stopped, in
// which case h is invoked synchronously with ErrChannelStopped and zero, per
// §4.5 invariant 1. It is the single generic implementation behind every
// exported SubscribeX method.
func subscribe[T any](c *Channel, sub *Subscriber[T], h func(ec error, value T)) {
	var zero T
	if c.isStopped() {
		h(ErrChannelStopped, zero)
		return
	}
	c.strand.sync(func() {
		if c.isStopped() {
			h(ErrChannelStopped, zero)
			return
		}
		sub.Subscribe(h)
	})
}

// SubscribeVersion registers h to receive the channel's version messages.
func (c *Channel) SubscribeVersion(h func(ec error, msg *wire.MsgVersion)) {
	subscribe(c, c.versionSub, h)
}

// SubscribeVerAck registers h to receive the channel's verack messages.
func (c *Channel) SubscribeVerAck(h func(ec error, msg *wire.MsgVerAck)) {
	subscribe(c, c.verackSub, h)
}

// SubscribeAddr registers h to receive the channel's addr messages.
func (c *Channel) SubscribeAddr(h func(ec error, msg *wire.MsgAddr)) {
	subscribe(c, c.addrSub, h)
}

// SubscribeGetAddr registers h to receive the channel's getaddr messages.
func (c *Channel) SubscribeGetAddr(h func(ec error, msg *wire.MsgGetAddr)) {
	subscribe(c, c.getAddrSub, h)
}

// SubscribeInv registers h to receive the channel's inv messages.
func (c *Channel) SubscribeInv(h func(ec error, msg *wire.MsgInv)) {
	subscribe(c, c.invSub, h)
}

// SubscribeGetData registers h to receive the channel's getdata messages.
func (c *Channel) SubscribeGetData(h func(ec error, msg *wire.MsgGetData)) {
	subscribe(c, c.getDataSub, h)
}

// SubscribeGetBlocks registers h to receive the channel's getblocks
// messages.
func (c *Channel) SubscribeGetBlocks(h func(ec error, msg *wire.MsgGetBlocks)) {
	subscribe(c, c.getBlocksSub, h)
}

// SubscribeTx registers h to receive the channel's tx messages.
func (c *Channel) SubscribeTx(h func(ec error, msg *wire.MsgTx)) {
	subscribe(c, c.txSub, h)
}

// SubscribeBlock registers h to receive the channel's block messages.
func (c *Channel) SubscribeBlock(h func(ec error, msg *wire.MsgBlock)) {
	subscribe(c, c.blockSub, h)
}

// SubscribePing registers h to receive the channel's ping messages.
func (c *Channel) SubscribePing(h func(ec error, msg *wire.MsgPing)) {
	subscribe(c, c.pingSub, h)
}

// SubscribePong registers h to receive the channel's pong messages.
func (c *Channel) SubscribePong(h func(ec error, msg *wire.MsgPong)) {
	subscribe(c, c.pongSub, h)
}

// SubscribeRaw registers h to receive every frame's header and undecoded
// payload, regardless of whether its command was recognized.
func (c *Channel) SubscribeRaw(h func(ec error, header wire.Header, payload []byte)) {
	subscribe(c, c.rawSub, func(ec error, v rawMessage) {
		h(ec, v.header, v.payload)
	})
}

// SubscribeStop registers h to be notified exactly once, with the error
// that caused it, when the channel stops.
func (c *Channel) SubscribeStop(h func(ec error)) {
	subscribe(c, c.stopSub, func(ec error, _ struct{}) {
		h(ec)
	})
}

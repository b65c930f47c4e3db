// Originally derived from: bmd.go (bmdMain, server construction and
// shutdown wiring).
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command channeld is a minimal demonstration listener: it accepts inbound
// connections, wraps each in a channel.Channel, logs the first version and
// verack it receives, answers the first ping with a pong, and logs why the
// channel stopped.  Each subscription is one-shot and is not renewed, so
// later version, verack and ping messages on the same connection are not
// handled.
package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/monetas/bmchannel/chanlog"
	"github.com/monetas/bmchannel/channel"
	"github.com/monetas/bmchannel/wire"
)

func magicForNet(name string) wire.Network {
	if name == "testnet" {
		return wire.TestNet
	}
	return wire.MainNet
}

func channeldMain() error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.LogDir, 0700); err != nil {
		return err
	}
	if err := chanlog.InitBackend(filepath.Join(cfg.LogDir, "channeld.log")); err != nil {
		return err
	}
	chanlog.SetLevel("CHANNEL", cfg.DebugLevel)

	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		return err
	}
	defer listener.Close()

	chanlog.Log.Infof("listening on %v", cfg.Listen)

	channelCfg := channel.Config{
		Magic:      magicForNet(cfg.MagicNet),
		Expiration: cfg.Expiration,
		Inactivity: cfg.Inactivity,
		Revival:    cfg.Revival,
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			return err
		}
		go serve(conn, channelCfg)
	}
}

// serve wraps one inbound connection in a Channel and drives the demo
// handshake behavior: log the first version and verack, answer the first ping
// with a pong, and log why the channel eventually stopped.  The one-shot
// subscriptions are not renewed.
func serve(conn net.Conn, cfg channel.Config) {
	c := channel.NewChannel(conn, cfg, chanlog.Log)

	c.SubscribeVersion(func(ec error, msg *wire.MsgVersion) {
		if ec == nil {
			chanlog.Log.Infof("%v: received version", c.Address())
		}
	})
	c.SubscribeVerAck(func(ec error, msg *wire.MsgVerAck) {
		if ec == nil {
			chanlog.Log.Infof("%v: received verack", c.Address())
		}
	})
	c.SubscribePing(func(ec error, msg *wire.MsgPing) {
		if ec != nil {
			return
		}
		c.SendMessage(wire.NewMsgPong(msg.Nonce), func(err error) {
			if err != nil {
				chanlog.Log.Debugf("%v: pong send failed: %v", c.Address(), err)
			}
		})
	})
	c.SubscribeStop(func(ec error) {
		chanlog.Log.Infof("%v: channel stopped: %v", c.Address(), ec)
	})

	c.Start()
}

func main() {
	if err := channeldMain(); err != nil {
		fmt.Fprintf(os.Stderr, "err %v\n", err)
		os.Exit(1)
	}
}

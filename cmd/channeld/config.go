// Originally derived from: config.go (loadConfig, cleanAndExpandPath,
// validLogLevel, newConfigParser).
// Copyright (c) 2015 Monetas.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcutil"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "channeld.conf"
	defaultLogLevel       = "info"
	defaultLogDirname     = "logs"
	defaultListen         = ":8333"
	defaultExpiration     = 90 * time.Minute
	defaultInactivity     = 90 * time.Second
	defaultRevival        = 30 * time.Second
)

var (
	channeldHomeDir   = btcutil.AppDataDir("channeld", false)
	defaultConfigFile = filepath.Join(channeldHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(channeldHomeDir, defaultLogDirname)
)

// config defines the configuration options for channeld.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ConfigFile string        `short:"C" long:"configfile" description:"Path to configuration file"`
	Listen     string        `short:"l" long:"listen" description:"Address to listen for inbound connections"`
	LogDir     string        `long:"logdir" description:"Directory to log output"`
	DebugLevel string        `short:"d" long:"debuglevel" description:"Logging level for the channel subsystem {trace, debug, info, warn, error, critical}"`
	MagicNet   string        `long:"net" description:"Network magic to accept: mainnet or testnet"`
	Expiration time.Duration `long:"expiration" description:"Maximum lifetime of a channel before it is force-closed"`
	Inactivity time.Duration `long:"inactivity" description:"How long a channel may go without receiving a frame before it is force-closed"`
	Revival    time.Duration `long:"revival" description:"Interval at which the revival deadline fires for an idle channel"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(channeldHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical":
		return true
	}
	return false
}

// loadConfig initializes and parses the config using a config file and
// command line options, in that order, with later sources taking
// precedence. Returns the parsed config and any leftover non-option
// arguments.
func loadConfig() (*config, []string, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		Listen:     defaultListen,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
		MagicNet:   "mainnet",
		Expiration: defaultExpiration,
		Inactivity: defaultInactivity,
		Revival:    defaultRevival,
	}

	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.Default)
	if _, err := preParser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if preCfg.ConfigFile != defaultConfigFile {
		cfg.ConfigFile = cleanAndExpandPath(preCfg.ConfigFile)
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if err := flags.NewIniParser(parser).ParseFile(cfg.ConfigFile); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			return nil, nil, err
		}
	}

	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	if !validLogLevel(cfg.DebugLevel) {
		return nil, nil, fmt.Errorf("the specified debug level [%v] is invalid", cfg.DebugLevel)
	}

	switch cfg.MagicNet {
	case "mainnet", "testnet":
	default:
		return nil, nil, fmt.Errorf("the specified network [%v] is invalid -- must be mainnet or testnet", cfg.MagicNet)
	}

	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	return &cfg, remainingArgs, nil
}

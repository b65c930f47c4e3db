// Originally derived from: btcsuite/btcd/log.go
// Copyright (c) 2013-2015 The btcsuite developers

// Package chanlog provides the subsystem logging plumbing used by the
// channel package and its host binaries.  It mirrors the btclog/seelog
// wiring used throughout the rest of this stack: a single seelog backend
// fans out to per-subsystem btclog.Logger values that callers can swap out
// or relevel independently.
package chanlog

import (
	"fmt"

	"github.com/btcsuite/btclog"
	"github.com/cihub/seelog"
)

// backendLog is the seelog logger that all subsystem loggers route their
// messages to.
var backendLog = seelog.Disabled

// Log is the CHANNEL subsystem logger, which host binaries hand to
// channel.NewChannel.  It is disabled by default until UseLogger installs a
// logger or SetLevel creates one against the backend set by InitBackend.
var Log = btclog.Disabled

// subsystemLoggers maps each subsystem identifier to its associated logger.
// CHANNEL is the only subsystem this package knows about directly; a host
// binary may register additional identifiers and route them to the same
// backend.
var subsystemLoggers = map[string]btclog.Logger{
	"CHANNEL": Log,
}

// UseLogger updates the logger references for subsystemID to logger.
// Invalid subsystems are ignored.
func UseLogger(subsystemID string, logger btclog.Logger) {
	if _, ok := subsystemLoggers[subsystemID]; !ok {
		return
	}
	subsystemLoggers[subsystemID] = logger

	if subsystemID == "CHANNEL" {
		Log = logger
	}
}

// InitBackend initializes a new seelog logger that is used as the backend
// for all logging subsystems and writes both to the console and to logFile.
func InitBackend(logFile string) error {
	config := `
	<seelog type="adaptive" mininterval="2000000" maxinterval="100000000"
		critmsgcount="500" minlevel="trace">
		<outputs formatid="all">
			<console />
			<rollingfile type="size" filename="%s" maxsize="10485760" maxrolls="3" />
		</outputs>
		<formats>
			<format id="all" format="%%Time %%Date [%%LEV] %%Msg%%n" />
		</formats>
	</seelog>`
	config = fmt.Sprintf(config, logFile)

	logger, err := seelog.LoggerFromConfigAsString(config)
	if err != nil {
		return fmt.Errorf("failed to create logger: %v", err)
	}

	backendLog = logger
	return nil
}

// SetLevel sets the logging level for the named subsystem.  Invalid
// subsystems are ignored.  Uninitialized subsystems are dynamically created
// as needed against the current backend.
func SetLevel(subsystemID string, logLevel string) {
	logger, ok := subsystemLoggers[subsystemID]
	if !ok {
		return
	}

	level, ok := btclog.LogLevelFromString(logLevel)
	if !ok {
		level = btclog.InfoLvl
	}

	if logger == btclog.Disabled {
		logger = btclog.NewSubsystemLogger(backendLog, subsystemID+": ")
		UseLogger(subsystemID, logger)
	}
	logger.SetLevel(level)
}

// DisableLog disables all library log output.  Logging output is disabled
// by default until either UseLogger or SetLevel is called.
func DisableLog() {
	Log = btclog.Disabled
	subsystemLoggers["CHANNEL"] = btclog.Disabled
}

// logClosure is used to provide a closure over expensive logging operations
// so they aren't performed when the logging level doesn't warrant it.
type logClosure func() string

// String invokes the underlying function and returns the result.
func (c logClosure) String() string {
	return c()
}

// NewLogClosure returns a new closure over a function that returns a string
// which itself satisfies the Stringer interface so it can be used with the
// logging system.
func NewLogClosure(c func() string) fmt.Stringer {
	return logClosure(c)
}

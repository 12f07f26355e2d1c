// Package obslog is the engine's structured-logging ambient layer: a
// package-level verbosity switch that is nearly free when off, backed by
// zerolog for structured, leveled output.
package obslog

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

var verbose atomic.Bool

// SetVerbose toggles debug-level logging on or off.
func SetVerbose(on bool) {
	verbose.Store(on)
}

// Verbose reports whether debug-level logging is currently enabled.
func Verbose() bool {
	return verbose.Load()
}

var loggers sync.Map // map[uuid.UUID]zerolog.Logger

// For returns a logger pre-bound with runID, so every line a single pricing
// call emits — across however many worker goroutines it spawns — carries the
// same correlation field.
func For(runID uuid.UUID) zerolog.Logger {
	if l, ok := loggers.Load(runID); ok {
		return l.(zerolog.Logger)
	}
	level := zerolog.InfoLevel
	if verbose.Load() {
		level = zerolog.DebugLevel
	}
	l := base.Level(level).With().Str("run_id", runID.String()).Logger()
	loggers.Store(runID, l)
	return l
}

// Forget drops the cached logger for a run, to be called once a context is
// done with its pricing call (the Context is reused across many calls, so
// this is a cheap per-call cleanup rather than a leak).
func Forget(runID uuid.UUID) {
	loggers.Delete(runID)
}

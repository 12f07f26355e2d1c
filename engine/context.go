package engine

import (
	"github.com/google/uuid"

	"github.com/tembolo1284/mcpricing/internal/rng"
)

// Context is the Go-native stand-in for the source's opaque, thin-handle
// context: a regular value constructed once per pricing call and configured
// via chained With... setters before any Price* method runs. Every exported
// method tolerates a nil receiver, matching the null-context contract: reads
// return a zero value, writes are no-ops, and no error slot is touched.
type Context struct {
	RunID uuid.UUID

	seed       uint64
	paths      int
	steps      int
	threads    int
	antithetic bool

	lastError Code
}

// NewContext creates a context seeded with seed, one path and one step by
// default (callers almost always override both via WithPaths/WithSteps),
// single-threaded, antithetic variates off. A fresh RunID is minted for log
// correlation.
func NewContext(seed uint64) *Context {
	return &Context{
		RunID:   uuid.New(),
		seed:    seed,
		paths:   1,
		steps:   1,
		threads: 1,
	}
}

// WithPaths sets the path count. Values <= 0 are rejected at the pricing
// call (see validatePositive), not here, since a nil context must
// tolerate every write as a no-op.
func (c *Context) WithPaths(n int) *Context {
	if c == nil {
		return nil
	}
	c.paths = n
	return c
}

// WithSteps sets the per-path step (or exercise-instant) count.
func (c *Context) WithSteps(n int) *Context {
	if c == nil {
		return nil
	}
	c.steps = n
	return c
}

// WithThreads sets the worker thread count. Values < 1 are clamped to 1 by
// internal/parallel.Dispatch, not here.
func (c *Context) WithThreads(n int) *Context {
	if c == nil {
		return nil
	}
	c.threads = n
	return c
}

// WithAntithetic toggles antithetic-pair variance reduction.
func (c *Context) WithAntithetic(on bool) *Context {
	if c == nil {
		return nil
	}
	c.antithetic = on
	return c
}

// Paths, Steps, Threads, Antithetic, Seed are nil-safe getters; a nil
// context reads as zero values.
func (c *Context) Paths() int {
	if c == nil {
		return 0
	}
	return c.paths
}

func (c *Context) Steps() int {
	if c == nil {
		return 0
	}
	return c.steps
}

func (c *Context) Threads() int {
	if c == nil {
		return 0
	}
	return c.threads
}

func (c *Context) Antithetic() bool {
	if c == nil {
		return false
	}
	return c.antithetic
}

func (c *Context) Seed() uint64 {
	if c == nil {
		return 0
	}
	return c.seed
}

// LastError returns the error code set by the most recent pricing call on
// this context. A nil context reads as Success, never touching an error
// slot that does not exist.
func (c *Context) LastError() Code {
	if c == nil {
		return Success
	}
	return c.lastError
}

// setError records code on the context. A nil context silently discards it.
func (c *Context) setError(code Code) {
	if c == nil {
		return
	}
	c.lastError = code
}

// masterRNG derives this context's master generator state from its seed.
// Called fresh at the start of every pricing call so repeated calls on the
// same context are themselves deterministic.
func (c *Context) masterRNG() rng.State {
	return rng.Seed(c.seed)
}

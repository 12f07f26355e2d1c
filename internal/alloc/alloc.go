// Package alloc provides the engine's one piece of process-wide mutable
// state: a write-once allocator hook for float64 scratch buffers. It
// generalizes a fixed-size sync.Pool of shock buffers into pools keyed by
// arbitrary scratch-buffer capacity. The pricers in package engine do not
// acquire their path, design-matrix, or spot-at-exercise buffers through it;
// they allocate them with make.
package alloc

import "sync"

// Allocator acquires and releases float64 scratch buffers. Acquire must
// return a slice of length n; Release returns a buffer obtained from Acquire
// back to the pool. Implementations must be safe for concurrent use — worker
// threads acquire and release their own buffers independently.
type Allocator interface {
	Acquire(n int) []float64
	Release(buf []float64)
}

// poolAllocator is the default Allocator: a sync.Pool bucketed by capacity
// class, avoiding reallocation across repeated pricing calls at the same
// path/step configuration.
type poolAllocator struct {
	pools sync.Map // map[int]*sync.Pool, keyed by capacity class
}

func classOf(n int) int {
	c := 64
	for c < n {
		c *= 2
	}
	return c
}

func (p *poolAllocator) Acquire(n int) []float64 {
	class := classOf(n)
	poolIface, _ := p.pools.LoadOrStore(class, &sync.Pool{
		New: func() interface{} {
			buf := make([]float64, class)
			return &buf
		},
	})
	pool := poolIface.(*sync.Pool)
	bufPtr := pool.Get().(*[]float64)
	return (*bufPtr)[:n]
}

func (p *poolAllocator) Release(buf []float64) {
	if cap(buf) == 0 {
		return
	}
	class := classOf(cap(buf))
	poolIface, ok := p.pools.Load(class)
	if !ok {
		return
	}
	full := buf[:cap(buf)]
	pool := poolIface.(*sync.Pool)
	pool.Put(&full)
}

var (
	mu      sync.Mutex
	current Allocator = &poolAllocator{}
	locked  bool
)

// SetAllocator replaces the default allocator. It is write-once: once a
// buffer has been taken through Acquire (or a prior SetAllocator call has
// succeeded), later calls are no-ops.
func SetAllocator(a Allocator) {
	mu.Lock()
	defer mu.Unlock()
	if locked || a == nil {
		return
	}
	current = a
	locked = true
}

// Acquire returns a scratch buffer of length n from the process-wide
// allocator, locking further SetAllocator calls.
func Acquire(n int) []float64 {
	mu.Lock()
	locked = true
	a := current
	mu.Unlock()
	return a.Acquire(n)
}

// Release returns buf to the process-wide allocator.
func Release(buf []float64) {
	mu.Lock()
	a := current
	mu.Unlock()
	a.Release(buf)
}

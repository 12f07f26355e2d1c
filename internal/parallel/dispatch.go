// Package parallel implements the L3 concurrency and reduction protocol:
// partitioning [0, units) across a fixed thread count, deriving each worker's
// RNG substream by jumping the master state, and reducing partial sums back
// together in thread-id order so the result is a pure function of
// (seed, thread count, unit count), never of goroutine scheduling order.
package parallel

import (
	"fmt"

	"github.com/tembolo1284/mcpricing/internal/rng"
)

// RunSpec describes one parallel dispatch: the master RNG state, how many
// independent units of work to partition (paths, or antithetic pairs — the
// caller's eval function decides what a "unit" means), and how many worker
// goroutines to split it across.
type RunSpec struct {
	Master  rng.State
	Units   int
	Threads int
}

// Partial is one worker's contribution before reduction.
type Partial struct {
	Sum, SumSq float64
}

// Eval is the per-thread inner loop: given an owned RNG substream and a
// half-open unit range [lo, hi), accumulate and return that range's partial
// sums. Implementations must not retain or mutate src after returning, and
// must not communicate with any other Eval invocation: workers take no
// locks and never interact once dispatched.
type Eval func(src *rng.State, lo, hi int) Partial

// Dispatch partitions [0, Units) into Threads contiguous ranges (thread i's
// RNG is the master jumped i times), runs Eval on each range, and reduces the
// partial sums by adding them in thread-id order — never in goroutine
// completion order — so the result is bit-identical across runs at fixed
// (seed, thread count, unit count). Threads == 1 runs inline with no
// goroutines at all.
func Dispatch(spec RunSpec, eval Eval) (Partial, error) {
	if spec.Threads < 1 {
		spec.Threads = 1
	}
	if spec.Units <= 0 {
		return Partial{}, nil
	}

	ranges := partitionRanges(spec.Units, spec.Threads)

	if spec.Threads == 1 {
		return eval(&spec.Master, ranges[0][0], ranges[0][1]), nil
	}

	results := make([]Partial, spec.Threads)
	errs := make([]error, spec.Threads)
	done := make(chan int, spec.Threads)

	streamState := spec.Master
	for i := 0; i < spec.Threads; i++ {
		lo, hi := ranges[i][0], ranges[i][1]
		workerState := streamState
		idx := i
		go func() {
			defer func() {
				if r := recover(); r != nil {
					errs[idx] = fmt.Errorf("worker %d failed: %v", idx, r)
				}
				done <- idx
			}()
			results[idx] = eval(&workerState, lo, hi)
		}()
		streamState = rng.Jump(streamState)
	}

	launched := spec.Threads
	for i := 0; i < launched; i++ {
		<-done
	}

	for i := 0; i < spec.Threads; i++ {
		if errs[i] != nil {
			return Partial{}, errs[i]
		}
	}

	var total Partial
	for i := 0; i < spec.Threads; i++ {
		total.Sum += results[i].Sum
		total.SumSq += results[i].SumSq
	}
	return total, nil
}

// partitionRanges splits [0, units) into `threads` contiguous, near-equal
// ranges: thread i gets floor(units/threads) elements, plus one extra if
// i < units%threads.
func partitionRanges(units, threads int) [][2]int {
	ranges := make([][2]int, threads)
	base := units / threads
	extra := units % threads
	start := 0
	for i := 0; i < threads; i++ {
		size := base
		if i < extra {
			size++
		}
		ranges[i] = [2]int{start, start + size}
		start += size
	}
	return ranges
}

// WorkerState returns the RNG state thread i would use for a given master —
// the master jumped i times — exposed so pricers that need to reproduce a
// single thread's stream outside Dispatch (e.g. inline thread-count-1 paths)
// can do so identically.
func WorkerState(master rng.State, threadIndex int) rng.State {
	return rng.JumpN(master, threadIndex)
}

package engine

import (
	"fmt"

	"github.com/tembolo1284/mcpricing/internal/parallel"
	"github.com/tembolo1284/mcpricing/internal/rng"
	"github.com/tembolo1284/mcpricing/internal/variance"
)

// runMC dispatches units independent units of work — one path, or one
// antithetic pair, depending on the caller — across c.Threads() worker
// goroutines via internal/parallel.Dispatch, reducing each worker's partial
// sum and sum-of-squares in thread-id order. newUnit is called once per
// worker goroutine (never shared across threads) and must return a closure
// that draws whatever the model needs from its owned substream and returns
// that unit's contribution to the running sum and sum-of-squares; path
// evaluators that need scratch space allocate it inside newUnit so each
// goroutine gets its own buffer.
func runMC(c *Context, units int, newUnit func() func(src *rng.State) (sum, sumSq float64)) (parallel.Partial, error) {
	spec := parallel.RunSpec{Master: c.masterRNG(), Units: units, Threads: c.Threads()}
	return parallel.Dispatch(spec, func(src *rng.State, lo, hi int) parallel.Partial {
		unit := newUnit()
		var p parallel.Partial
		for i := lo; i < hi; i++ {
			sum, sumSq := unit(src)
			p.Sum += sum
			p.SumSq += sumSq
		}
		return p
	})
}

// runMCControlVariate is runMC's control-variate analogue: each worker
// accumulates (x, z) sample pairs into its own variance.Accumulator seeded
// with the known control expectation ez, and the accumulators are merged in
// thread-id order exactly as runMC merges partial sums. newUnit is called
// once per worker goroutine and must return a closure that adds one or more
// samples directly to the accumulator it's given — antithetic callers add
// both legs of a pair as two separate samples, so the accumulator's sample
// count stays the true draw count, not the pair count. It duplicates
// parallel.Dispatch's partition/jump/recover protocol directly rather than
// going through it, since Dispatch's reduction shape is fixed to
// parallel.Partial's two running sums and a control-variate accumulator
// needs five.
func runMCControlVariate(c *Context, units int, ez float64, newUnit func() func(src *rng.State, acc *variance.Accumulator)) (*variance.Accumulator, error) {
	threads := c.Threads()
	if threads < 1 {
		threads = 1
	}
	if units <= 0 {
		return variance.NewAccumulator(ez), nil
	}

	ranges := partitionUnits(units, threads)
	master := c.masterRNG()

	if threads == 1 {
		return accumulateRange(master, ez, ranges[0][0], ranges[0][1], newUnit()), nil
	}

	results := make([]*variance.Accumulator, threads)
	errs := make([]error, threads)
	done := make(chan int, threads)

	state := master
	for i := 0; i < threads; i++ {
		lo, hi := ranges[i][0], ranges[i][1]
		workerState := state
		idx := i
		go func() {
			defer func() {
				if r := recover(); r != nil {
					errs[idx] = fmt.Errorf("control-variate worker %d failed: %v", idx, r)
				}
				done <- idx
			}()
			results[idx] = accumulateRange(workerState, ez, lo, hi, newUnit())
		}()
		state = rng.Jump(state)
	}

	for i := 0; i < threads; i++ {
		<-done
	}
	for i := 0; i < threads; i++ {
		if errs[i] != nil {
			return nil, errs[i]
		}
	}

	total := variance.NewAccumulator(ez)
	for i := 0; i < threads; i++ {
		total.Merge(results[i])
	}
	return total, nil
}

func accumulateRange(src rng.State, ez float64, lo, hi int, unit func(src *rng.State, acc *variance.Accumulator)) *variance.Accumulator {
	acc := variance.NewAccumulator(ez)
	for i := lo; i < hi; i++ {
		unit(&src, acc)
	}
	return acc
}

// partitionUnits splits [0, units) into `threads` contiguous, near-equal
// ranges — duplicated from internal/parallel's unexported partitionRanges
// since runMCControlVariate doesn't go through parallel.Dispatch.
func partitionUnits(units, threads int) [][2]int {
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

// mcUnits returns the number of dispatch units for c's path count and
// antithetic setting: one per path when antithetic is off, one per pair
// (paths/2, rounded down) when it's on. sampleCount is the total number of
// individual payoff draws those units actually produce, which is what the
// final mean divides by.
func mcUnits(c *Context) (units, sampleCount int) {
	if !c.Antithetic() {
		return c.Paths(), c.Paths()
	}
	pairs := c.Paths() / 2
	return pairs, pairs * 2
}

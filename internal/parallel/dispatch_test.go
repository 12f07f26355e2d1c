package parallel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/tembolo1284/mcpricing/internal/rng"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sumUnits(src *rng.State, lo, hi int) Partial {
	var p Partial
	for i := lo; i < hi; i++ {
		p.Sum += float64(i)
		p.SumSq += float64(i) * float64(i)
	}
	return p
}

func TestDispatchSingleThreadRunsInline(t *testing.T) {
	spec := RunSpec{Master: rng.Seed(1), Units: 10, Threads: 1}
	got, err := Dispatch(spec, sumUnits)
	assert.NoError(t, err)
	assert.Equal(t, 45.0, got.Sum)
}

func TestDispatchMultiThreadMatchesSingleThreadSum(t *testing.T) {
	spec1 := RunSpec{Master: rng.Seed(2), Units: 997, Threads: 1}
	want, err := Dispatch(spec1, sumUnits)
	assert.NoError(t, err)

	spec4 := RunSpec{Master: rng.Seed(2), Units: 997, Threads: 4}
	got, err := Dispatch(spec4, sumUnits)
	assert.NoError(t, err)
	assert.Equal(t, want.Sum, got.Sum)
	assert.Equal(t, want.SumSq, got.SumSq)
}

func TestDispatchZeroThreadsClampsToOne(t *testing.T) {
	spec := RunSpec{Master: rng.Seed(3), Units: 5, Threads: 0}
	got, err := Dispatch(spec, sumUnits)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, got.Sum)
}

func TestDispatchZeroUnitsReturnsZeroPartial(t *testing.T) {
	spec := RunSpec{Master: rng.Seed(4), Units: 0, Threads: 4}
	got, err := Dispatch(spec, sumUnits)
	assert.NoError(t, err)
	assert.Equal(t, Partial{}, got)
}

func TestDispatchPropagatesWorkerPanicAsError(t *testing.T) {
	spec := RunSpec{Master: rng.Seed(5), Units: 8, Threads: 4}
	_, err := Dispatch(spec, func(src *rng.State, lo, hi int) Partial {
		if lo == 0 {
			panic("synthetic worker failure")
		}
		return sumUnits(src, lo, hi)
	})
	assert.Error(t, err)
}

func TestDispatchIsDeterministicAcrossRuns(t *testing.T) {
	run := func() Partial {
		spec := RunSpec{Master: rng.Seed(6), Units: 1000, Threads: 8}
		p, err := Dispatch(spec, sumUnits)
		assert.NoError(t, err)
		return p
	}
	a, b := run(), run()
	assert.Equal(t, a, b)
}

func TestWorkerStateMatchesJumpN(t *testing.T) {
	master := rng.Seed(9)
	for i := 0; i < 4; i++ {
		assert.Equal(t, rng.JumpN(master, i), WorkerState(master, i))
	}
}

func TestPartitionRangesCoverUnitsExactlyOnceEach(t *testing.T) {
	ranges := partitionRanges(17, 5)
	assert.Len(t, ranges, 5)
	covered := 0
	for i, r := range ranges {
		assert.True(t, r[0] <= r[1])
		covered += r[1] - r[0]
		if i > 0 {
			assert.Equal(t, ranges[i-1][1], r[0])
		}
	}
	assert.Equal(t, 17, covered)
}

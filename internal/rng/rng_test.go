package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedNeverZero(t *testing.T) {
	for _, seed := range []uint64{0, 1, 42, ^uint64(0)} {
		st := Seed(seed)
		assert.False(t, st.Equal(State{}), "seed %d produced the all-zero fixed point", seed)
	}
}

func TestSeedsDivergeQuickly(t *testing.T) {
	a := Seed(1)
	b := Seed(2)
	require.False(t, a.Equal(b))
}

func TestNextUniformRange(t *testing.T) {
	st := Seed(42)
	const n = 100_000
	sum := 0.0
	for i := 0; i < n; i++ {
		u := st.NextUniform()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
		sum += u
	}
	mean := sum / n
	assert.InDelta(t, 0.5, mean, 0.01)
}

func TestNextNormalMoments(t *testing.T) {
	st := Seed(7)
	const n = 100_000
	sum, sumSq := 0.0, 0.0
	for i := 0; i < n; i++ {
		z := st.NextNormal()
		sum += z
		sumSq += z * z
	}
	mean := sum / n
	variance := sumSq/n - mean*mean
	assert.InDelta(t, 0.0, mean, 0.02)
	assert.InDelta(t, 1.0, variance, 0.02)
}

func TestJumpDisjoint(t *testing.T) {
	base := Seed(123)
	jumped := Jump(base)
	require.False(t, base.Equal(jumped))

	a, b := base, jumped
	for i := 0; i < 100; i++ {
		require.NotEqual(t, a.NextU64(), b.NextU64(), "output %d coincided", i)
	}
}

func TestJumpDeterministic(t *testing.T) {
	base := Seed(99)
	j1 := Jump(base)
	j2 := Jump(base)
	assert.True(t, j1.Equal(j2))
}

func TestJumpNMatchesRepeatedJump(t *testing.T) {
	base := Seed(55)
	manual := base
	for i := 0; i < 5; i++ {
		manual = Jump(manual)
	}
	assert.True(t, manual.Equal(JumpN(base, 5)))
}

func TestNoNaNOrInf(t *testing.T) {
	st := Seed(1)
	for i := 0; i < 10_000; i++ {
		z := st.NextNormal()
		require.False(t, math.IsNaN(z) || math.IsInf(z, 0))
	}
}

package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tembolo1284/mcpricing/internal/rng"
)

func TestGBMTerminalZeroVolIsIntrinsicDrift(t *testing.T) {
	p := NewGBMParams(100, 100, 0.05, 0, 1)
	got := p.Terminal(1.23) // z should be irrelevant when sigma=0
	want := 100 * math.Exp(0.05)
	assert.InDelta(t, want, got, 1e-9)
}

func TestGBMTerminalZeroS0(t *testing.T) {
	p := NewGBMParams(0, 100, 0.05, 0.2, 1)
	assert.Equal(t, 0.0, p.Terminal(0.5))
}

func TestGBMStepPathStartsAtS0AndStaysFinitePositive(t *testing.T) {
	st := rng.Seed(1)
	sp := NewStepParams(0.05, 0.2, 1.0/252)
	path := make([]float64, 253)
	draws := make([]float64, 252)
	for i := range draws {
		draws[i] = st.NextNormal()
	}
	sp.SimulatePath(100, draws, path)
	assert.Equal(t, 100.0, path[0])
	for _, v := range path {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		assert.Greater(t, v, 0.0)
	}
}

func TestBlack76NoCostOfCarry(t *testing.T) {
	p := NewBlack76Params(100, 100, 0.05, 0.2, 1)
	// Mean log return over many draws should center near -0.5 sigma^2 T, not
	// (r - 0.5 sigma^2) T, since Black-76 applies no drift from r.
	st := rng.Seed(2)
	sum := 0.0
	const n = 20000
	for i := 0; i < n; i++ {
		sum += math.Log(p.Terminal(st.NextNormal()) / p.F0)
	}
	mean := sum / n
	assert.InDelta(t, -0.5*0.2*0.2*1, mean, 0.02)
}

func TestHestonFellerPredicate(t *testing.T) {
	satisfied := NewHestonParams(100, 0.04, 100, 0.05, 1, 2, 0.04, 0.3, -0.7)
	violated := NewHestonParams(100, 0.04, 100, 0.05, 1, 2, 0.04, 1.0, -0.7)
	assert.True(t, satisfied.FellerSatisfied())
	assert.False(t, violated.FellerSatisfied())
}

func TestHestonEulerTruncatesNegativeVariance(t *testing.T) {
	p := NewHestonParams(100, 0.0001, 100, 0.05, 1, 2, 0.0001, 1.5, -0.7)
	s, v := 100.0, 0.0001
	for i := 0; i < 1000; i++ {
		s, v = p.StepEuler(s, v, 1.0/252, -5, -5) // pathological negative shocks
		assert.False(t, math.IsNaN(s) || math.IsNaN(v))
	}
}

func TestSABRAbsorptionAtZero(t *testing.T) {
	p := NewSABRParams(100, 0.3, 1.0, 0.4, -0.3, 1)
	f, sigma := 0.0, 0.3
	fNext, sigmaNext := p.StepEuler(f, sigma, 1.0/252, 1, 1)
	assert.Equal(t, 0.0, fNext)
	assert.GreaterOrEqual(t, sigmaNext, sabrSigmaFloor)
}

func TestMertonKappaCompensator(t *testing.T) {
	p := NewMertonParams(100, 100, 0.05, 0.2, 1, 0.1, -0.1, 0.15)
	want := math.Exp(-0.1+0.5*0.15*0.15) - 1
	assert.InDelta(t, want, p.Kappa(), 1e-12)
}

func TestMertonConvergesToGBMAsLambdaGoesToZero(t *testing.T) {
	st := rng.Seed(3)
	p := NewMertonParams(100, 100, 0.05, 0.2, 1, 0, 0, 0.1)
	sp := NewMertonStepParams(p, 1.0)
	z := st.NextNormal()
	s := sp.Step(100, z, &st)
	assert.False(t, math.IsNaN(s))
	// With lambda = 0 no jump is drawn and the step is exactly a GBM step.
	assert.InDelta(t, NewStepParams(0.05, 0.2, 1.0).Step(100, z), s, 1e-12)
}

func TestPoissonDrawBernoulliRegimeBounded(t *testing.T) {
	st := rng.Seed(4)
	for i := 0; i < 1000; i++ {
		n := PoissonDraw(0.05, &st)
		assert.LessOrEqual(t, n, 1)
	}
}

func TestPoissonDrawMeanApproximatelyCorrect(t *testing.T) {
	st := rng.Seed(5)
	const trials = 50000
	sum := 0
	for i := 0; i < trials; i++ {
		sum += PoissonDraw(2.0, &st)
	}
	mean := float64(sum) / trials
	assert.InDelta(t, 2.0, mean, 0.1)
}

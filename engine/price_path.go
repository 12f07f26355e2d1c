package engine

import (
	"github.com/tembolo1284/mcpricing/internal/models"
	"github.com/tembolo1284/mcpricing/internal/pricing"
	"github.com/tembolo1284/mcpricing/internal/reference"
	"github.com/tembolo1284/mcpricing/internal/rng"
	"github.com/tembolo1284/mcpricing/internal/variance"
)

// gbmFiller returns a pricing.PathFiller that simulates a GBM path of
// c.Steps() steps over maturity t into scratch (length steps+1).
func gbmFiller(s0, r, sigma, t float64, steps int) pricing.PathFiller {
	sp := models.NewStepParams(r, sigma, t/float64(steps))
	return func(src models.Source, scratch []float64) {
		scratch[0] = s0
		s := s0
		for i := 1; i < len(scratch); i++ {
			s = sp.Step(s, src.NextNormal())
			scratch[i] = s
		}
	}
}

// PriceAsianGBM prices an arithmetic- or geometric-average Asian option
// under geometric Brownian motion, observed once per step. The fixed-strike
// arithmetic case (the common one) is priced with a geometric-average
// control variate, since the geometric average has a closed form
// (internal/reference.GeometricAsianCall/Put) and tracks the arithmetic one
// closely on the same path; floating-strike and geometric-average requests
// fall back to plain (optionally antithetic) Monte Carlo.
func (c *Context) PriceAsianGBM(s0, k, r, sigma, t float64, ot pricing.OptionType, floating, geometric bool) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(s0, k, sigma, t, c.Paths(), c.Steps()) {
		c.setError(InvalidArgument)
		return 0
	}

	fill := gbmFiller(s0, r, sigma, t, c.Steps())
	discount := models.NewGBMParams(s0, k, r, sigma, t).Discount()

	if !floating && !geometric {
		return c.priceAsianControlVariate(s0, k, r, sigma, t, ot, fill, discount)
	}

	eval := pricing.Asian(ot, k, floating, geometric, fill)
	units, n := mcUnits(c)
	partial, err := runMC(c, units, pathAntitheticUnit(c.Antithetic(), c.Steps(), eval))
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}
	c.setError(Success)
	return discount * partial.Sum / float64(n)
}

// priceAsianControlVariate prices the fixed-strike arithmetic Asian case
// using the geometric average as a control variate. ez is the undiscounted
// expectation of the geometric payoff — the closed-form discounted price
// scaled back up by 1/discount — since the accumulator works in undiscounted
// payoff units and the final mean is discounted once at the end. Antithetic
// pairing, when enabled, contributes both the +z and -z arithmetic/geometric
// pairs as two samples per unit rather than skipping control variates.
func (c *Context) priceAsianControlVariate(s0, k, r, sigma, t float64, ot pricing.OptionType, fill pricing.PathFiller, discount float64) float64 {
	var ez float64
	switch ot {
	case pricing.Put:
		ez = reference.GeometricAsianPut(s0, k, r, sigma, t, c.Steps()) / discount
	default:
		ez = reference.GeometricAsianCall(s0, k, r, sigma, t, c.Steps()) / discount
	}

	pair := pricing.AsianPair(ot, k, fill)
	antithetic := c.Antithetic()
	steps := c.Steps()

	newUnit := func() func(src *rng.State, acc *variance.Accumulator) {
		scratch := make([]float64, steps+1)
		if !antithetic {
			return func(src *rng.State, acc *variance.Accumulator) {
				x, z := pair(src, scratch)
				acc.Add(x, z)
			}
		}
		return func(src *rng.State, acc *variance.Accumulator) {
			snapshot := *src
			px, pz := pair(src, scratch)
			acc.Add(px, pz)

			*src = snapshot
			nx, nz := pair(negatingSource{base: src}, scratch)
			acc.Add(nx, nz)
		}
	}

	units, _ := mcUnits(c)
	acc, err := runMCControlVariate(c, units, ez, newUnit)
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}
	c.setError(Success)
	return discount * acc.Estimate()
}

// PriceLookbackGBM prices a floating- or fixed-strike lookback option under
// geometric Brownian motion, observed once per step.
func (c *Context) PriceLookbackGBM(s0, k, r, sigma, t float64, ot pricing.OptionType, floating bool) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(s0, k, sigma, t, c.Paths(), c.Steps()) {
		c.setError(InvalidArgument)
		return 0
	}

	fill := gbmFiller(s0, r, sigma, t, c.Steps())
	eval := pricing.Lookback(ot, k, floating, fill)
	discount := models.NewGBMParams(s0, k, r, sigma, t).Discount()

	units, n := mcUnits(c)
	partial, err := runMC(c, units, pathAntitheticUnit(c.Antithetic(), c.Steps(), eval))
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}
	c.setError(Success)
	return discount * partial.Sum / float64(n)
}

// PriceBarrierGBM prices a discretely monitored barrier option under
// geometric Brownian motion, with a Brownian-bridge correction applied
// between each pair of monitored steps.
func (c *Context) PriceBarrierGBM(s0, k, h, rebate, r, sigma, t float64, ot pricing.OptionType, bt pricing.BarrierType) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(s0, k, sigma, t, c.Paths(), c.Steps()) {
		c.setError(InvalidArgument)
		return 0
	}

	dt := t / float64(c.Steps())
	fill := gbmFiller(s0, r, sigma, t, c.Steps())
	eval := pricing.Barrier(ot, k, h, rebate, bt, sigma, dt, fill)
	discount := models.NewGBMParams(s0, k, r, sigma, t).Discount()

	units, n := mcUnits(c)
	partial, err := runMC(c, units, pathAntitheticUnit(c.Antithetic(), c.Steps(), eval))
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}
	c.setError(Success)
	return discount * partial.Sum / float64(n)
}

// pathAntitheticUnit returns a per-worker closure factory for a path
// evaluator, optionally running it twice per unit with the underlying RNG's
// sign mirrored between the two runs via a negating source wrapper — the
// path-dependent analogue of the terminal-only fixedNormalSource trick in
// price_european.go, needed because a path evaluator draws many normals,
// not one. Each call to the returned factory allocates its own scratch
// buffer, so concurrent worker goroutines never share one.
func pathAntitheticUnit(antithetic bool, steps int, eval pricing.PathEvaluator) func() func(src *rng.State) (sum, sumSq float64) {
	return func() func(src *rng.State) (float64, float64) {
		scratch := make([]float64, steps+1)
		if !antithetic {
			return func(src *rng.State) (float64, float64) {
				x := eval(src, scratch)
				return x, x * x
			}
		}
		return func(src *rng.State) (float64, float64) {
			snapshot := *src
			pos := eval(src, scratch)

			*src = snapshot
			neg := eval(negatingSource{base: src}, scratch)

			sum := pos + neg
			return sum, sum * sum
		}
	}
}

// negatingSource mirrors every normal draw from the underlying source,
// reproducing the same sequence of uniforms (so the same path shape is
// retraced) but negating each normal draw — the path-level antithetic
// pairing counterpart of the single-draw European case.
type negatingSource struct {
	base *rng.State
}

func (n negatingSource) NextUniform() float64 {
	return n.base.NextUniform()
}

func (n negatingSource) NextNormal() float64 {
	return -n.base.NextNormal()
}

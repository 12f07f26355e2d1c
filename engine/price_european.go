package engine

import (
	"github.com/tembolo1284/mcpricing/internal/models"
	"github.com/tembolo1284/mcpricing/internal/pricing"
	"github.com/tembolo1284/mcpricing/internal/rng"
	"github.com/tembolo1284/mcpricing/internal/variance"
)

// PriceEuropeanGBM prices a European option under geometric Brownian motion.
// Loop N paths, accumulate max(±(S(T)-K), 0), return discount · mean.
func (c *Context) PriceEuropeanGBM(s0, k, r, sigma, t float64, ot pricing.OptionType) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(s0, k, sigma, t, c.Paths(), c.Steps()) {
		c.setError(InvalidArgument)
		return 0
	}

	params := models.NewGBMParams(s0, k, r, sigma, t)
	eval := pricing.European(ot, k, func(src models.Source) float64 {
		return params.Terminal(src.NextNormal())
	})

	units, n := mcUnits(c)
	partial, err := runMC(c, units, europeanUnit(eval, c.Antithetic()))
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}

	c.setError(Success)
	return params.Discount() * partial.Sum / float64(n)
}

// PriceEuropeanBlack76 prices a European option on a forward under Black-76
// no-cost-of-carry dynamics.
func (c *Context) PriceEuropeanBlack76(f0, k, r, sigma, t float64, ot pricing.OptionType) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(f0, k, sigma, t, c.Paths(), c.Steps()) {
		c.setError(InvalidArgument)
		return 0
	}

	params := models.NewBlack76Params(f0, k, r, sigma, t)
	eval := pricing.European(ot, k, func(src models.Source) float64 {
		return params.Terminal(src.NextNormal())
	})

	units, n := mcUnits(c)
	partial, err := runMC(c, units, europeanUnit(eval, c.Antithetic()))
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}

	c.setError(Success)
	return params.Discount() * partial.Sum / float64(n)
}

// PriceDigitalGBM prices a cash-or-nothing / asset-or-nothing digital option
// under geometric Brownian motion.
func (c *Context) PriceDigitalGBM(s0, k, r, sigma, t, q float64, cash bool, ot pricing.OptionType) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(s0, k, sigma, t, c.Paths(), c.Steps()) {
		c.setError(InvalidArgument)
		return 0
	}

	params := models.NewGBMParams(s0, k, r, sigma, t)
	eval := pricing.Digital(ot, k, q, cash, func(src models.Source) float64 {
		return params.Terminal(src.NextNormal())
	})

	units, n := mcUnits(c)
	partial, err := runMC(c, units, europeanUnit(eval, c.Antithetic()))
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}

	c.setError(Success)
	return params.Discount() * partial.Sum / float64(n)
}

// europeanUnit wraps a terminal-only payoff function into the per-worker
// closure factory runMC expects, folding in antithetic pairing when enabled.
// eval itself touches no mutable state shared across calls, so every worker
// goroutine can safely share the same returned closure.
func europeanUnit(eval func(src models.Source) float64, antithetic bool) func() func(src *rng.State) (sum, sumSq float64) {
	if !antithetic {
		return func() func(src *rng.State) (float64, float64) {
			return func(src *rng.State) (float64, float64) {
				x := eval(src)
				return x, x * x
			}
		}
	}
	return func() func(src *rng.State) (float64, float64) {
		return func(src *rng.State) (float64, float64) {
			z := src.NextNormal()
			sum := variance.AntitheticPair(z, func(zz float64) float64 {
				return eval(fixedNormalSource{Source: src, z: zz})
			})
			return sum, sum * sum
		}
	}
}

// fixedNormalSource overrides NextNormal with a fixed value z while
// delegating NextUniform to the underlying source; this is how antithetic
// pairing replays a terminal-only payoff at +z and -z without the payoff
// function needing to know about antithetic variates at all.
type fixedNormalSource struct {
	models.Source
	z float64
}

func (f fixedNormalSource) NextNormal() float64 {
	return f.z
}

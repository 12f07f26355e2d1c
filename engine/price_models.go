package engine

import (
	"math"

	"github.com/tembolo1284/mcpricing/internal/models"
	"github.com/tembolo1284/mcpricing/internal/obslog"
	"github.com/tembolo1284/mcpricing/internal/pricing"
	"github.com/tembolo1284/mcpricing/internal/rng"
)

// PriceEuropeanHeston prices a European option under the Heston stochastic-
// volatility model via full-truncation Euler stepping. A Feller-condition
// violation is logged, not an error: it only biases the discretization, it
// never rejects the parameters.
func (c *Context) PriceEuropeanHeston(s0, k, r, t, v0, kappa, theta, xi, rho float64, ot pricing.OptionType) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(s0, k, xi, t, c.Paths(), c.Steps()) {
		c.setError(InvalidArgument)
		return 0
	}

	params := models.NewHestonParams(s0, v0, k, r, t, kappa, theta, xi, rho)
	if !params.FellerSatisfied() {
		obslog.For(c.RunID).Warn().
			Float64("kappa", kappa).Float64("theta", theta).Float64("xi", xi).
			Msg("feller condition violated; variance process may be truncated")
	}

	dt := t / float64(c.Steps())
	steps := c.Steps()
	eval := func(src models.Source) float64 {
		s, v := s0, v0
		for i := 0; i < steps; i++ {
			z1, z2 := src.NextNormal(), src.NextNormal()
			s, v = params.StepEuler(s, v, dt, z1, z2)
		}
		return pricing.VanillaPayoff(ot, s, k)
	}

	units, n := mcUnits(c)
	partial, err := runMC(c, units, steppedUnit(eval, c.Antithetic()))
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}
	c.setError(Success)
	return params.Discount() * partial.Sum / float64(n)
}

// PriceEuropeanSABR prices a European option under the SABR stochastic-vol
// model via Euler stepping with absorption at F=0.
func (c *Context) PriceEuropeanSABR(f0, k, alpha, beta, rho, nu, r, t float64, ot pricing.OptionType) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(f0, k, alpha, t, c.Paths(), c.Steps()) {
		c.setError(InvalidArgument)
		return 0
	}

	params := models.NewSABRParams(f0, alpha, beta, nu, rho, t)
	dt := t / float64(c.Steps())
	steps := c.Steps()
	discount := math.Exp(-r * t)
	eval := func(src models.Source) float64 {
		f, sigma := f0, alpha
		for i := 0; i < steps; i++ {
			z1, z2 := src.NextNormal(), src.NextNormal()
			f, sigma = params.StepEuler(f, sigma, dt, z1, z2)
		}
		return pricing.VanillaPayoff(ot, f, k)
	}

	units, n := mcUnits(c)
	partial, err := runMC(c, units, steppedUnit(eval, c.Antithetic()))
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}
	c.setError(Success)
	return discount * partial.Sum / float64(n)
}

// PriceEuropeanMerton prices a European option under Merton jump-diffusion.
func (c *Context) PriceEuropeanMerton(s0, k, r, sigma, t, lambda, muJ, sigmaJ float64, ot pricing.OptionType) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(s0, k, sigma, t, c.Paths(), c.Steps()) {
		c.setError(InvalidArgument)
		return 0
	}

	params := models.NewMertonParams(s0, k, r, sigma, t, lambda, muJ, sigmaJ)
	sp := models.NewMertonStepParams(params, t/float64(c.Steps()))
	steps := c.Steps()
	eval := func(src models.Source) float64 {
		s := s0
		for i := 0; i < steps; i++ {
			s = sp.Step(s, src.NextNormal(), src)
		}
		return pricing.VanillaPayoff(ot, s, k)
	}

	units, n := mcUnits(c)
	partial, err := runMC(c, units, steppedUnit(eval, c.Antithetic()))
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}
	c.setError(Success)
	return params.Discount() * partial.Sum / float64(n)
}

// steppedUnit wraps a stepped (multi-draw) payoff closure into a per-worker
// closure factory runMC expects, folding in antithetic pairing by replaying
// the same uniform sequence with every normal draw negated (negatingSource,
// defined in price_path.go) rather than drawing an independent second path.
// eval closes over no mutable state shared across calls, so the factory just
// returns the same shape every time.
func steppedUnit(eval func(src models.Source) float64, antithetic bool) func() func(src *rng.State) (sum, sumSq float64) {
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
			snapshot := *src
			pos := eval(src)
			*src = snapshot
			neg := eval(negatingSource{base: src})
			sum := pos + neg
			return sum, sum * sum
		}
	}
}

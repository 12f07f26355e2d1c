// Package reference implements the closed-form pricing formulas used as
// convergence targets and as control-variate expectations: Black-Scholes,
// Black-76, a truncated Merton jump-diffusion series, Hagan's SABR
// implied-vol approximation, and intentionally loose analytic barrier and
// lookback formulas. None of these are on the Monte Carlo hot path; they
// exist purely as external collaborators the pricing engine compares
// against or pulls a known expectation from.
package reference

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

func d1d2(s, k, r, sigma, t float64) (d1, d2 float64) {
	d1 = (math.Log(s/k) + (r+0.5*sigma*sigma)*t) / (sigma * math.Sqrt(t))
	d2 = d1 - sigma*math.Sqrt(t)
	return
}

// BlackScholesCall returns the closed-form European call price under
// geometric Brownian motion with continuous dividend yield q.
func BlackScholesCall(s, k, r, q, sigma, t float64) float64 {
	if sigma <= 0 || t <= 0 {
		return math.Max(s*math.Exp(-q*t)-k*math.Exp(-r*t), 0)
	}
	d1, d2 := d1d2(s*math.Exp(-q*t), k, r, sigma, t)
	return s*math.Exp(-q*t)*stdNormal.CDF(d1) - k*math.Exp(-r*t)*stdNormal.CDF(d2)
}

// BlackScholesPut returns the closed-form European put price, via put-call
// parity on BlackScholesCall.
func BlackScholesPut(s, k, r, q, sigma, t float64) float64 {
	call := BlackScholesCall(s, k, r, q, sigma, t)
	return call - s*math.Exp(-q*t) + k*math.Exp(-r*t)
}

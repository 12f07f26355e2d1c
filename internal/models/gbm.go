// Package models implements the per-model path-simulation kernels: GBM,
// Black-76, Heston, SABR, and Merton jump-diffusion. Each kernel exposes a
// terminal-only shape (one normal draw produces S(T)) where closed-form drift
// allows it, and a stepped shape (n normal draws produce a path). Parameter
// blocks precompute the constants a hot inner loop needs (drift·T, σ√T,
// discount factor) so the step functions themselves do only adds,
// multiplies, and one exponential.
package models

import "math"

// GBMParams is the precomputed parameter block for geometric Brownian
// motion: S(T) = S(0)·exp((r − ½σ²)T + σ√T·Z).
type GBMParams struct {
	S0, K, R, Sigma, T float64

	driftT   float64 // (r - 0.5*sigma^2)*T
	volSqrtT float64 // sigma*sqrt(T)
	discount float64 // exp(-r*T)
}

// NewGBMParams precomputes the constants GBMParams needs.
func NewGBMParams(s0, k, r, sigma, t float64) GBMParams {
	return GBMParams{
		S0: s0, K: k, R: r, Sigma: sigma, T: t,
		driftT:   (r - 0.5*sigma*sigma) * t,
		volSqrtT: sigma * math.Sqrt(t),
		discount: math.Exp(-r * t),
	}
}

// Discount returns the precomputed exp(-rT).
func (p GBMParams) Discount() float64 { return p.discount }

// Terminal returns S(T) for one standard normal draw z. T = 0 or σ = 0 are
// valid: T = 0 makes driftT and volSqrtT both 0, returning S0 exactly; σ = 0
// makes only volSqrtT 0, returning the deterministic S0·exp(rT).
func (p GBMParams) Terminal(z float64) float64 {
	if p.S0 <= 0 {
		return 0
	}
	return p.S0 * math.Exp(p.driftT+p.volSqrtT*z)
}

// StepParams precomputes the per-step constants for a GBM path of n steps
// over total maturity T.
type StepParams struct {
	R, Sigma, Dt float64

	driftDt   float64
	volSqrtDt float64
}

// NewStepParams precomputes GBM step constants for a step size dt.
func NewStepParams(r, sigma, dt float64) StepParams {
	return StepParams{
		R: r, Sigma: sigma, Dt: dt,
		driftDt:   (r - 0.5*sigma*sigma) * dt,
		volSqrtDt: sigma * math.Sqrt(dt),
	}
}

// Step advances a GBM path one increment: S(t+Δ) = S(t)·exp((r − ½σ²)Δ + σ√Δ·Z).
func (p StepParams) Step(s, z float64) float64 {
	return s * math.Exp(p.driftDt+p.volSqrtDt*z)
}

// SimulatePath fills path (length n+1, path[0] = s0) using one normal draw per
// step from draws (len(draws) >= n).
func (p StepParams) SimulatePath(s0 float64, draws []float64, path []float64) {
	path[0] = s0
	for i := 0; i < len(path)-1; i++ {
		path[i+1] = p.Step(path[i], draws[i])
	}
}

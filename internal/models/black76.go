package models

import "math"

// Black76Params is the precomputed parameter block for the Black-76 forward
// path: same log-normal dynamics as GBM but with drift = −½σ²Δ (no cost of
// carry — the forward is a martingale under the forward measure) and
// terminal discounting via exp(−rT) applied separately by the pricer.
type Black76Params struct {
	F0, K, R, Sigma, T float64

	driftT   float64
	volSqrtT float64
	discount float64
}

// NewBlack76Params precomputes the constants Black76Params needs.
func NewBlack76Params(f0, k, r, sigma, t float64) Black76Params {
	return Black76Params{
		F0: f0, K: k, R: r, Sigma: sigma, T: t,
		driftT:   -0.5 * sigma * sigma * t,
		volSqrtT: sigma * math.Sqrt(t),
		discount: math.Exp(-r * t),
	}
}

// Discount returns exp(-rT).
func (p Black76Params) Discount() float64 { return p.discount }

// Terminal returns F(T) for one standard normal draw z.
func (p Black76Params) Terminal(z float64) float64 {
	if p.F0 <= 0 {
		return 0
	}
	return p.F0 * math.Exp(p.driftT+p.volSqrtT*z)
}

// Black76StepParams precomputes per-step constants for a stepped Black-76
// forward path (no cost of carry on any step).
type Black76StepParams struct {
	Sigma, Dt float64

	driftDt   float64
	volSqrtDt float64
}

// NewBlack76StepParams precomputes Black-76 step constants for step size dt.
func NewBlack76StepParams(sigma, dt float64) Black76StepParams {
	return Black76StepParams{
		Sigma: sigma, Dt: dt,
		driftDt:   -0.5 * sigma * sigma * dt,
		volSqrtDt: sigma * math.Sqrt(dt),
	}
}

// Step advances a Black-76 forward path one increment.
func (p Black76StepParams) Step(f, z float64) float64 {
	return f * math.Exp(p.driftDt+p.volSqrtDt*z)
}

// SimulatePath fills path (length n+1, path[0] = f0) using one normal draw
// per step.
func (p Black76StepParams) SimulatePath(f0 float64, draws []float64, path []float64) {
	path[0] = f0
	for i := 0; i < len(path)-1; i++ {
		path[i+1] = p.Step(path[i], draws[i])
	}
}

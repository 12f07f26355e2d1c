package models

import "math"

// Source is the subset of the RNG substrate a model kernel needs: a uniform
// and a standard-normal draw. *rng.State satisfies this by value of its
// pointer receiver methods; kernels take Source instead of the concrete type
// so they never import internal/rng, keeping L1 decoupled from L0's storage
// representation.
type Source interface {
	NextUniform() float64
	NextNormal() float64
}

// MertonParams is the precomputed parameter block for Merton's
// jump-diffusion: diffusion as in GBM, plus a compound Poisson jump process
// with log-normal jump sizes N(μⱼ, σⱼ²).
type MertonParams struct {
	S0, K, R, Sigma, T    float64
	Lambda, MuJ, SigmaJ   float64

	kappa     float64 // E[jump size] - 1 compensator
	driftT    float64
	volSqrtDt float64
}

// NewMertonParams precomputes κ = exp(μⱼ + ½σⱼ²) − 1.
func NewMertonParams(s0, k, r, sigma, t, lambda, muJ, sigmaJ float64) MertonParams {
	kappa := math.Exp(muJ+0.5*sigmaJ*sigmaJ) - 1
	return MertonParams{
		S0: s0, K: k, R: r, Sigma: sigma, T: t,
		Lambda: lambda, MuJ: muJ, SigmaJ: sigmaJ,
		kappa: kappa,
	}
}

// Kappa returns the mean jump-size compensator exp(μⱼ + ½σⱼ²) − 1.
func (p MertonParams) Kappa() float64 { return p.kappa }

// Discount returns exp(-rT).
func (p MertonParams) Discount() float64 { return math.Exp(-p.R * p.T) }

// MertonStepParams precomputes per-step constants for a stepped Merton path.
type MertonStepParams struct {
	MertonParams
	Dt float64

	driftDt   float64
	volSqrtDt float64
}

// NewMertonStepParams precomputes step constants for step size dt.
func NewMertonStepParams(p MertonParams, dt float64) MertonStepParams {
	return MertonStepParams{
		MertonParams: p,
		Dt:           dt,
		driftDt:      (p.R - p.Lambda*p.kappa - 0.5*p.Sigma*p.Sigma) * dt,
		volSqrtDt:    p.Sigma * math.Sqrt(dt),
	}
}

// PoissonDraw samples a Poisson(mean) count. For mean < 0.1 it approximates
// with a single Bernoulli trial, since the probability of two or more jumps
// is negligible at that intensity; otherwise it uses an inverse-transform
// loop on a running product of uniforms (Knuth's algorithm).
func PoissonDraw(mean float64, src Source) int {
	if mean <= 0 {
		return 0
	}
	if mean < 0.1 {
		if src.NextUniform() < mean {
			return 1
		}
		return 0
	}

	l := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		k++
		p *= src.NextUniform()
		if p <= l {
			return k - 1
		}
	}
}

// Step advances a Merton path one increment: drift + diffusion + the sum of
// N independent log-normal jump returns, then exponentiates.
func (p MertonStepParams) Step(s float64, z float64, src Source) float64 {
	n := PoissonDraw(p.Lambda*p.Dt, src)
	jumpSum := 0.0
	for i := 0; i < n; i++ {
		jumpSum += p.MuJ + p.SigmaJ*src.NextNormal()
	}
	return s * math.Exp(p.driftDt+p.volSqrtDt*z+jumpSum)
}

// SimulatePath fills path (length n+1, path[0] = s0), drawing one normal per
// step from draws and sampling jumps from src.
func (p MertonStepParams) SimulatePath(s0 float64, draws []float64, src Source, path []float64) {
	path[0] = s0
	for i := 0; i < len(path)-1; i++ {
		path[i+1] = p.Step(path[i], draws[i], src)
	}
}

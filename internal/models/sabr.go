package models

import "math"

// sabrSigmaFloor keeps σ away from zero so the CEV term F^β never divides by
// zero after repeated vol-of-vol shocks.
const sabrSigmaFloor = 1e-10

// SABRParams is the precomputed parameter block for the SABR stochastic-vol
// forward model: dF = σ·F^β·dW1, dσ = ν·σ·dW2, corr(dW1, dW2) = ρ.
type SABRParams struct {
	F0, Sigma0, Beta, Nu, Rho, T float64

	sqrtOneMinusRhoSq float64
}

// NewSABRParams precomputes the √(1−ρ²) correlation constant.
func NewSABRParams(f0, sigma0, beta, nu, rho, t float64) SABRParams {
	return SABRParams{
		F0: f0, Sigma0: sigma0, Beta: beta, Nu: nu, Rho: rho, T: t,
		sqrtOneMinusRhoSq: math.Sqrt(math.Max(0, 1-rho*rho)),
	}
}

// CorrelatedNormals builds the two correlated Brownian increments, same
// construction as HestonParams.
func (p SABRParams) CorrelatedNormals(z1, z2 float64) (w1, w2 float64) {
	return z1, p.Rho*z1 + p.sqrtOneMinusRhoSq*z2
}

// StepEuler advances (F, σ) one Δ. Absorption at F = 0 is sticky: once hit,
// F stays zero for the rest of the path. σ is floored at 1e-10 to avoid
// division-free but still-degenerate CEV terms.
func (p SABRParams) StepEuler(f, sigma, dt float64, z1, z2 float64) (fNext, sigmaNext float64) {
	if f <= 0 {
		return 0, math.Max(sigma, sabrSigmaFloor)
	}
	w1, w2 := p.CorrelatedNormals(z1, z2)
	sqrtDt := math.Sqrt(dt)

	fNext = f + sigma*math.Pow(f, p.Beta)*sqrtDt*w1
	if fNext < 0 {
		fNext = 0
	}
	sigmaNext = math.Max(sigma+p.Nu*sigma*sqrtDt*w2, sabrSigmaFloor)
	return fNext, sigmaNext
}

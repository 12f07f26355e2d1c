package models

import "math"

// HestonParams is the precomputed parameter block for the Heston stochastic
// variance model: dS = r·S·dt + √v·S·dW1, dv = κ(θ−v)dt + σ√v·dW2, with
// corr(dW1, dW2) = ρ.
type HestonParams struct {
	S0, V0, K, R, T  float64
	Kappa, Theta, Xi float64 // vol-of-vol is named Xi to avoid clashing with Sigma elsewhere
	Rho              float64

	sqrtOneMinusRhoSq float64
}

// NewHestonParams precomputes the √(1−ρ²) correlation constant.
func NewHestonParams(s0, v0, k, r, t, kappa, theta, xi, rho float64) HestonParams {
	return HestonParams{
		S0: s0, V0: v0, K: k, R: r, T: t,
		Kappa: kappa, Theta: theta, Xi: xi, Rho: rho,
		sqrtOneMinusRhoSq: math.Sqrt(math.Max(0, 1-rho*rho)),
	}
}

// Discount returns exp(-rT).
func (p HestonParams) Discount() float64 { return math.Exp(-p.R * p.T) }

// FellerSatisfied reports whether 2κθ > σ² — the Feller condition under which
// the CIR variance process stays strictly positive almost surely. Violating
// it is not an error; it only biases the Euler discretization, which is why
// StepEuler floors variance at zero rather than rejecting such parameters.
func (p HestonParams) FellerSatisfied() bool {
	return 2*p.Kappa*p.Theta > p.Xi*p.Xi
}

// CorrelatedNormals builds the two correlated Brownian increments from two
// independent standard normals via the 2x2 Cholesky factor: W1 = Z1,
// W2 = ρ·Z1 + √(1−ρ²)·Z2.
func (p HestonParams) CorrelatedNormals(z1, z2 float64) (w1, w2 float64) {
	return z1, p.Rho*z1 + p.sqrtOneMinusRhoSq*z2
}

// StepEuler advances (S, v) one Δ via full-truncation Euler: v⁺ = max(v, 0);
// dS uses √v⁺; dv uses the untruncated variance in the drift but √v⁺ in the
// diffusion. Post-update values are kept as-is and only re-truncated on the
// next call's read of vPlus.
func (p HestonParams) StepEuler(s, v, dt float64, z1, z2 float64) (sNext, vNext float64) {
	w1, w2 := p.CorrelatedNormals(z1, z2)
	vPlus := math.Max(v, 0)
	sqrtVPlus := math.Sqrt(vPlus)
	sqrtDt := math.Sqrt(dt)

	sNext = s * math.Exp((p.R-0.5*vPlus)*dt+sqrtVPlus*sqrtDt*w1)
	vNext = v + p.Kappa*(p.Theta-v)*dt + p.Xi*sqrtVPlus*sqrtDt*w2
	return sNext, vNext
}

// StepQE advances (S, v) one Δ via Andersen's Quadratic-Exponential scheme.
// zV feeds the ψ≤1.5 shifted-square branch, uV the ψ>1.5 atom-at-zero /
// exponential-tail mixture; zS is an independent normal driving the spot
// update (the S/v correlation is carried entirely by the k0..k4 drift terms
// below, the standard QE construction).
func (p HestonParams) StepQE(s, v, dt float64, zV, uV, zS float64) (sNext, vNext float64) {
	const psiCrit = 1.5

	ekt := math.Exp(-p.Kappa * dt)
	m := p.Theta + (v-p.Theta)*ekt
	s2 := (v*p.Xi*p.Xi*ekt/p.Kappa)*(1-ekt) +
		(p.Theta*p.Xi*p.Xi/(2*p.Kappa))*(1-ekt)*(1-ekt)
	psi := 0.0
	if m > 0 {
		psi = s2 / (m * m)
	}

	if psi <= psiCrit {
		invPsi := 1 / psi
		b2 := 2*invPsi - 1 + math.Sqrt(2*invPsi)*math.Sqrt(2*invPsi-1)
		b := math.Sqrt(math.Max(b2, 0))
		a := m / (1 + b2)
		vNext = a * (b + zV) * (b + zV)
	} else {
		pZero := (psi - 1) / (psi + 1)
		beta := (1 - pZero) / m
		if uV <= pZero {
			vNext = 0
		} else {
			vNext = math.Log((1-pZero)/(1-uV)) / beta
		}
	}

	// Trapezoidal approximation of the integrated variance plus the standard
	// Andersen correction term in ρ/σ.
	gamma1, gamma2 := 0.5, 0.5
	k0 := -p.Rho*p.Kappa*p.Theta*dt/p.Xi
	k1 := gamma1*dt*(p.Kappa*p.Rho/p.Xi-0.5) - p.Rho/p.Xi
	k2 := gamma2*dt*(p.Kappa*p.Rho/p.Xi-0.5) + p.Rho/p.Xi
	k3 := gamma1 * dt * (1 - p.Rho*p.Rho)
	k4 := gamma2 * dt * (1 - p.Rho*p.Rho)

	logS := math.Log(s) + p.R*dt + k0 + k1*v + k2*vNext +
		math.Sqrt(math.Max(k3*v+k4*vNext, 0))*zS
	sNext = math.Exp(logS)
	return sNext, vNext
}

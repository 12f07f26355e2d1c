package reference

import "math"

// geometricAsianMoments returns the mean and variance of ln(G) under the
// risk-neutral GBM measure, where G is the geometric average of n equally
// spaced observations over [0, T], excluding t=0. Derived from the identity
// sum_{i=1}^n sum_{j=1}^n min(i,j) = n(n+1)(2n+1)/6.
func geometricAsianMoments(s0, r, sigma, t float64, n int) (mu, variance float64) {
	nf := float64(n)
	dt := t / nf
	tbar := dt * (nf + 1) / 2
	variance = sigma * sigma * dt * (nf + 1) * (2*nf + 1) / (6 * nf)
	mu = math.Log(s0) + (r-0.5*sigma*sigma)*tbar
	return mu, variance
}

// GeometricAsianCall returns the closed-form price of a discretely
// monitored, fixed-strike geometric-average Asian call under GBM (Kemna &
// Vorst, 1990), observed at n equally spaced points excluding t=0. This is
// the control-variate expectation the arithmetic-average Asian estimator
// uses: the two averages are driven by the same path and tightly
// correlated, but only the geometric one prices in closed form.
func GeometricAsianCall(s0, k, r, sigma, t float64, n int) float64 {
	if sigma <= 0 || t <= 0 || n <= 0 {
		return math.Max(s0-k, 0)
	}
	mu, v := geometricAsianMoments(s0, r, sigma, t, n)
	sg := math.Sqrt(v)

	d1 := (mu - math.Log(k) + v) / sg
	d2 := d1 - sg

	undiscounted := math.Exp(mu+0.5*v)*stdNormal.CDF(d1) - k*stdNormal.CDF(d2)
	return math.Exp(-r*t) * undiscounted
}

// GeometricAsianPut returns the fixed-strike geometric Asian put price via
// put-call parity against GeometricAsianCall: Put = Call - e^{-rT}(E[G] - K).
func GeometricAsianPut(s0, k, r, sigma, t float64, n int) float64 {
	call := GeometricAsianCall(s0, k, r, sigma, t, n)
	if sigma <= 0 || t <= 0 || n <= 0 {
		return math.Max(k-s0, 0)
	}
	mu, v := geometricAsianMoments(s0, r, sigma, t, n)
	eg := math.Exp(mu + 0.5*v)
	return call - math.Exp(-r*t)*(eg-k)
}

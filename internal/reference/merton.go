package reference

import "math"

// mertonSeriesTerms is the truncation point for the Merton jump-diffusion
// series; Poisson weights beyond this are negligible for the lambda*T
// regimes the engine tests against.
const mertonSeriesTerms = 30

// MertonCallSeries returns the Merton (1976) closed-form jump-diffusion
// call price: a Poisson-weighted sum of Black-Scholes prices, each with
// volatility and drift adjusted for n jumps having occurred by maturity.
// lambda is the jump intensity, muJ/sigmaJ the log-jump-size mean/stdev.
func MertonCallSeries(s, k, r, sigma, t, lambda, muJ, sigmaJ float64) float64 {
	kappa := math.Exp(muJ+0.5*sigmaJ*sigmaJ) - 1
	// Jump counts are weighted under the jump-adjusted intensity λ(1+κ), the
	// measure under which each term's Black-Scholes price uses its own rN.
	lambdaT := lambda * (1 + kappa) * t

	sum := 0.0
	weight := math.Exp(-lambdaT) // Poisson(n=0; lambdaT)
	for n := 0; n < mertonSeriesTerms; n++ {
		sigmaN := math.Sqrt(sigma*sigma + float64(n)*sigmaJ*sigmaJ/t)
		rN := r - lambda*kappa + float64(n)*math.Log(1+kappa)/t

		sum += weight * BlackScholesCall(s, k, rN, 0, sigmaN, t)

		// Poisson recurrence: P(n+1) = P(n) * lambdaT / (n+1)
		weight *= lambdaT / float64(n+1)
	}
	return sum
}

// Package variance implements two variance-reduction estimators: antithetic
// pairing and the control-variate adjustment.
package variance

// AntitheticPair evaluates payoff at both +z and -z for one normal draw z,
// returning the sum of the two payoffs. Callers accumulate this sum into
// their running sum/sum-of-squares exactly as they would a single path's
// payoff, but must remember the effective path count is 2·pairs — the final
// mean divides by 2·pairs, not by the number of AntitheticPair calls.
func AntitheticPair(z float64, payoff func(z float64) float64) (sum float64) {
	return payoff(z) + payoff(-z)
}

package engine

// validatePositive enforces the numeric preconditions every pricer checks
// before touching the RNG: S0 > 0, K > 0, sigma >= 0, T >= 0, path count > 0,
// step/observation count > 0. T = 0 or sigma = 0 are valid degenerate cases,
// not violations.
func validatePositive(s0, k, sigma, t float64, paths, steps int) bool {
	return s0 > 0 && k > 0 && sigma >= 0 && t >= 0 && paths > 0 && steps > 0
}

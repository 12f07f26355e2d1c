package pricing

import (
	"math"

	"github.com/tembolo1284/mcpricing/internal/models"
)

// PathFiller simulates one path into scratch (length steps+1, scratch[0] the
// initial value) using whatever draws the underlying model needs from src.
// It is the path-dependent analogue of TerminalFunc.
type PathFiller func(src models.Source, scratch []float64)

// PathEvaluator draws one path (or terminal value) via src into scratch and
// returns its payoff. Scratch is owned by the caller (one per worker thread,
// reused across paths) so the hot loop performs no per-path allocation.
type PathEvaluator func(src models.Source, scratch []float64) float64

// Asian prices an arithmetic- or geometric-average Asian option. The average
// excludes index 0 (the initial spot, not an observation). Fixed strike pays
// vanilla(average, K); floating strike pays vanilla(terminal, average).
func Asian(ot OptionType, k float64, floating, geometric bool, fill PathFiller) PathEvaluator {
	return func(src models.Source, scratch []float64) float64 {
		fill(src, scratch)
		n := len(scratch) - 1
		if n <= 0 {
			return 0
		}

		sum, sumLog := 0.0, 0.0
		for i := 1; i < len(scratch); i++ {
			sum += scratch[i]
			sumLog += math.Log(scratch[i])
		}
		avg := sum / float64(n)
		if geometric {
			avg = math.Exp(sumLog / float64(n))
		}

		terminal := scratch[len(scratch)-1]
		if floating {
			return VanillaPayoff(ot, terminal, avg)
		}
		return VanillaPayoff(ot, avg, k)
	}
}

// AsianPair fills one path and returns both the fixed-strike arithmetic- and
// geometric-average payoffs from it. The two averages are driven by the same
// path and closely correlated, but only the geometric one has a known
// closed form under GBM — this is what lets the arithmetic estimate use the
// geometric one as a control variate.
func AsianPair(ot OptionType, k float64, fill PathFiller) func(src models.Source, scratch []float64) (arithmetic, geometric float64) {
	return func(src models.Source, scratch []float64) (float64, float64) {
		fill(src, scratch)
		n := len(scratch) - 1
		if n <= 0 {
			return 0, 0
		}

		sum, sumLog := 0.0, 0.0
		for i := 1; i < len(scratch); i++ {
			sum += scratch[i]
			sumLog += math.Log(scratch[i])
		}
		arithAvg := sum / float64(n)
		geoAvg := math.Exp(sumLog / float64(n))
		return VanillaPayoff(ot, arithAvg, k), VanillaPayoff(ot, geoAvg, k)
	}
}

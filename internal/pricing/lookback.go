package pricing

import (
	"math"

	"github.com/tembolo1284/mcpricing/internal/models"
)

// Lookback prices a floating- or fixed-strike lookback option. Floating call
// pays S(T)-min, put pays max-S(T); fixed call pays max(max(S)-K,0), fixed
// put pays max(K-min(S),0).
func Lookback(ot OptionType, k float64, floating bool, fill PathFiller) PathEvaluator {
	return func(src models.Source, scratch []float64) float64 {
		fill(src, scratch)

		min, max := scratch[0], scratch[0]
		for _, v := range scratch[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
		terminal := scratch[len(scratch)-1]

		if floating {
			switch ot {
			case Call:
				return math.Max(terminal-min, 0)
			case Put:
				return math.Max(max-terminal, 0)
			}
			return 0
		}

		switch ot {
		case Call:
			return math.Max(max-k, 0)
		case Put:
			return math.Max(k-min, 0)
		}
		return 0
	}
}

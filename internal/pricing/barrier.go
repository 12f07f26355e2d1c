package pricing

import (
	"math"

	"github.com/tembolo1284/mcpricing/internal/models"
)

// Barrier prices a discretely monitored barrier option with a Brownian-
// bridge correction between vertices. sigma and dt are the constant-
// volatility/step-size inputs the bridge probability needs; h is the
// barrier level, rebate the constant paid on a knocked-out path.
func Barrier(ot OptionType, k, h, rebate float64, bt BarrierType, sigma, dt float64, fill PathFiller) PathEvaluator {
	return func(src models.Source, scratch []float64) float64 {
		fill(src, scratch)

		hit := false
		for i := 0; i < len(scratch)-1 && !hit; i++ {
			hit = segmentHit(bt, h, scratch[i], scratch[i+1], sigma, dt, src)
		}

		terminal := scratch[len(scratch)-1]
		vanilla := VanillaPayoff(ot, terminal, k)

		if bt.IsKnockIn() {
			if hit {
				return vanilla
			}
			return 0
		}
		if hit {
			return rebate
		}
		return vanilla
	}
}

// segmentHit determines whether one path segment (s1, s2) crosses barrier h.
// If either endpoint already violates it, the segment is a certain hit with
// no RNG draw. Otherwise one uniform u decides the segment via the
// Brownian-bridge crossing probability:
//
//	p = exp(-2·ln(s1/H)·ln(s2/H) / (σ²Δ))   (down barrier)
//
// and the symmetric expression (ln(H/s1)·ln(H/s2)) for an up barrier.
func segmentHit(bt BarrierType, h, s1, s2, sigma, dt float64, src models.Source) bool {
	down := bt.IsDown()

	if down {
		if s1 <= h || s2 <= h {
			return true
		}
	} else {
		if s1 >= h || s2 >= h {
			return true
		}
	}

	var p float64
	if down {
		p = math.Exp(-2 * math.Log(s1/h) * math.Log(s2/h) / (sigma * sigma * dt))
	} else {
		p = math.Exp(-2 * math.Log(h/s1) * math.Log(h/s2) / (sigma * sigma * dt))
	}

	u := src.NextUniform()
	return u < p
}

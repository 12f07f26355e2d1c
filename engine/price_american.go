package engine

import (
	"github.com/tembolo1284/mcpricing/internal/models"
	"github.com/tembolo1284/mcpricing/internal/obslog"
	"github.com/tembolo1284/mcpricing/internal/parallel"
	"github.com/tembolo1284/mcpricing/internal/pricing"
	"github.com/tembolo1284/mcpricing/internal/rng"
)

// PriceAmericanGBM prices an American option under geometric Brownian
// motion via Longstaff-Schwartz: American is the special case of Bermudan
// with one exercise instant per simulation step.
func (c *Context) PriceAmericanGBM(s0, k, r, sigma, t float64, ot pricing.OptionType) float64 {
	return c.priceEarlyExerciseGBM(s0, k, r, sigma, t, ot, pricing.AmericanSchedule(c.Steps()))
}

// PriceBermudanGBM prices a Bermudan option exercisable only at the given
// fractions of maturity (each in (0, 1], ending at 1.0), under geometric
// Brownian motion via Longstaff-Schwartz with a finer underlying
// simulation between instants.
func (c *Context) PriceBermudanGBM(s0, k, r, sigma, t float64, ot pricing.OptionType, schedule pricing.ExerciseSchedule) float64 {
	return c.priceEarlyExerciseGBM(s0, k, r, sigma, t, ot, schedule)
}

func (c *Context) priceEarlyExerciseGBM(s0, k, r, sigma, t float64, ot pricing.OptionType, schedule pricing.ExerciseSchedule) float64 {
	if c == nil {
		return 0
	}
	if !validatePositive(s0, k, sigma, t, c.Paths(), len(schedule)) {
		c.setError(InvalidArgument)
		return 0
	}

	substepsPerGap := pricing.BermudanSubstepsPerGap(schedule)
	periodDiscount := pricing.PeriodDiscounts(schedule, r, t)
	fill := gbmInstantFiller(s0, r, sigma, t, schedule, substepsPerGap)

	snapshots := make([][]float64, c.Paths())
	spec := parallel.RunSpec{Master: c.masterRNG(), Units: c.Paths(), Threads: c.Threads()}
	_, err := parallel.Dispatch(spec, func(src *rng.State, lo, hi int) parallel.Partial {
		for i := lo; i < hi; i++ {
			snap := make([]float64, len(schedule)+1)
			fill(src, snap)
			snapshots[i] = snap
		}
		return parallel.Partial{}
	})
	if err != nil {
		c.setError(ThreadingError)
		return 0
	}

	logger := obslog.For(c.RunID)
	price := pricing.LSMPrice(ot, k, snapshots, periodDiscount, func(instant int, reason string) {
		logger.Debug().Int("instant", instant).Str("reason", reason).Msg("lsm step skipped")
	})

	c.setError(Success)
	return price
}

// gbmInstantFiller simulates a fine GBM path with substepsPerGap sub-steps
// between each pair of successive exercise instants, recording only the
// spot value at each instant into scratch (length len(schedule)+1,
// scratch[0] the initial spot).
func gbmInstantFiller(s0, r, sigma, t float64, schedule pricing.ExerciseSchedule, substepsPerGap int) func(src *rng.State, scratch []float64) {
	return func(src *rng.State, scratch []float64) {
		scratch[0] = s0
		s := s0
		prevFrac := 0.0
		for idx, frac := range schedule {
			gap := (frac - prevFrac) * t
			sp := models.NewStepParams(r, sigma, gap/float64(substepsPerGap))
			for j := 0; j < substepsPerGap; j++ {
				s = sp.Step(s, src.NextNormal())
			}
			scratch[idx+1] = s
			prevFrac = frac
		}
	}
}

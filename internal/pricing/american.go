package pricing

import "math"

// ExerciseSchedule is an ordered sequence of exercise instants expressed as
// fractions of maturity in (0, 1], terminating at 1.0.
type ExerciseSchedule []float64

// AmericanSchedule returns the uniform schedule with one exercise instant
// per simulation step: American exercise is the special case of Bermudan
// with an instant at every step.
func AmericanSchedule(steps int) ExerciseSchedule {
	sched := make(ExerciseSchedule, steps)
	for i := 1; i <= steps; i++ {
		sched[i-1] = float64(i) / float64(steps)
	}
	return sched
}

// minBermudanSubsteps and minBermudanTotalSubsteps are the floors on fine
// sub-stepping between Bermudan exercise instants: at least 10 per gap, and
// at least 50 sub-steps across the whole schedule regardless of how few
// instants it has.
const (
	minBermudanSubsteps      = 10
	minBermudanTotalSubsteps = 50
)

// BermudanSubstepsPerGap returns the number of fine simulation steps to take
// between each pair of successive exercise instants, honoring both the
// per-gap and whole-schedule floors.
func BermudanSubstepsPerGap(schedule ExerciseSchedule) int {
	n := len(schedule)
	if n == 0 {
		return 0
	}
	perGap := minBermudanSubsteps
	if perGap*n < minBermudanTotalSubsteps {
		perGap = (minBermudanTotalSubsteps + n - 1) / n
	}
	return perGap
}

// PeriodDiscounts returns the per-period discount factors LSMPrice expects:
// periodDiscount[0] is an unused placeholder (index 0 in the snapshot table
// is the initial spot, never discounted back past), and periodDiscount[j]
// for j = 1..len(schedule) is the single-period discount factor spanning
// the gap between exercise instants j-1 and j under a constant rate r.
func PeriodDiscounts(schedule ExerciseSchedule, r, maturity float64) []float64 {
	n := len(schedule)
	out := make([]float64, n+1)
	out[0] = 1
	prev := 0.0
	for i, frac := range schedule {
		gap := (frac - prev) * maturity
		out[i+1] = math.Exp(-r * gap)
		prev = frac
	}
	return out
}

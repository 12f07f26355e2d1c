package variance

// minVarianceZ is the sample-variance floor below which the control variate
// is declared numerically degenerate and the adjustment is skipped.
const minVarianceZ = 1e-12

// Accumulator holds the five running sums and sample count the
// control-variate estimator needs: Σx, Σz, Σx², Σz², Σxz, and n. EZ is the
// caller-supplied known expectation of Z and must be set before the first
// Add call; it is never updated during accumulation.
type Accumulator struct {
	EZ float64

	sumX, sumZ   float64
	sumX2, sumZ2 float64
	sumXZ        float64
	n            int
}

// NewAccumulator creates an accumulator with the known control-variate
// expectation ez.
func NewAccumulator(ez float64) *Accumulator {
	return &Accumulator{EZ: ez}
}

// Add folds in one (x, z) sample pair.
func (a *Accumulator) Add(x, z float64) {
	a.sumX += x
	a.sumZ += z
	a.sumX2 += x * x
	a.sumZ2 += z * z
	a.sumXZ += x * z
	a.n++
}

// Merge folds another accumulator's running sums into a — used to reduce
// per-thread accumulators after a parallel dispatch, in thread-id order.
func (a *Accumulator) Merge(o *Accumulator) {
	a.sumX += o.sumX
	a.sumZ += o.sumZ
	a.sumX2 += o.sumX2
	a.sumZ2 += o.sumZ2
	a.sumXZ += o.sumXZ
	a.n += o.n
}

// N returns the number of samples folded in.
func (a *Accumulator) N() int { return a.n }

// MeanX returns the unadjusted sample mean of X.
func (a *Accumulator) MeanX() float64 {
	if a.n == 0 {
		return 0
	}
	return a.sumX / float64(a.n)
}

// Estimate returns the control-variate adjusted estimate:
//
//	mean(X) - ĉ·(mean(Z) - E[Z]),  ĉ = sample Cov(X,Z) / sample Var(Z)
//
// If sample Var(Z) < 1e-12 — Z is numerically constant — the adjustment is
// skipped and mean(X) is returned unchanged.
func (a *Accumulator) Estimate() float64 {
	if a.n == 0 {
		return 0
	}
	n := float64(a.n)
	meanX := a.sumX / n
	meanZ := a.sumZ / n

	varZ := a.sumZ2/n - meanZ*meanZ
	if varZ < minVarianceZ {
		return meanX
	}
	covXZ := a.sumXZ/n - meanX*meanZ
	c := covXZ / varZ
	return meanX - c*(meanZ-a.EZ)
}

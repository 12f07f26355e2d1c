package pricing

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularNormalMatrix is returned (and swallowed — the step is simply
// skipped) when the in-the-money normal-equations matrix is not positive
// definite at some backward-induction step.
var ErrSingularNormalMatrix = errors.New("pricing: singular normal-equations matrix")

// basisDim is the number of Longstaff-Schwartz basis functions: {1, 1-x,
// 1-2x+½x²}, x = S/K.
const basisDim = 3

func basisOf(x float64) [basisDim]float64 {
	return [basisDim]float64{1, 1 - x, 1 - 2*x + 0.5*x*x}
}

// regressContinuation fits continuation = Σ βₖ·basisₖ(x) over the in-the-money
// subset (xs[i], ys[i]) via the normal equations AᵀAβ = Aᵀy, built by hand and
// solved with gonum's Cholesky factorization against this 3x3 system. A
// non-positive-definite normal matrix (too few independent samples,
// degenerate x values) is reported as ErrSingularNormalMatrix so the caller
// can skip the step.
func regressContinuation(xs, ys []float64) (beta [basisDim]float64, err error) {
	if len(xs) < basisDim {
		return beta, ErrSingularNormalMatrix
	}

	var ata [basisDim * basisDim]float64
	var aty [basisDim]float64

	for i, x := range xs {
		b := basisOf(x)
		y := ys[i]
		for r := 0; r < basisDim; r++ {
			aty[r] += b[r] * y
			for c := 0; c < basisDim; c++ {
				ata[r*basisDim+c] += b[r] * b[c]
			}
		}
	}

	sym := mat.NewSymDense(basisDim, ata[:])
	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return beta, ErrSingularNormalMatrix
	}

	rhs := mat.NewVecDense(basisDim, aty[:])
	var solVec mat.VecDense
	if err := chol.SolveVecTo(&solVec, rhs); err != nil {
		return beta, ErrSingularNormalMatrix
	}

	for i := 0; i < basisDim; i++ {
		beta[i] = solVec.AtVec(i)
	}
	return beta, nil
}

func continuationValue(beta [basisDim]float64, x float64) float64 {
	b := basisOf(x)
	v := 0.0
	for i := 0; i < basisDim; i++ {
		v += beta[i] * b[i]
	}
	return v
}

// LSMSkipLogger is called (if non-nil) whenever a backward-induction step is
// skipped, naming the instant index and the reason — wired to
// internal/obslog by the engine layer.
type LSMSkipLogger func(instant int, reason string)

// LSMPrice runs Longstaff-Schwartz backward induction over a snapshot table:
// snapshots[i] holds path i's spot value at each exercise instant, index 0
// being the initial spot (never exercisable) and the last index the final
// instant (maturity, always in the cash-flow vector's initial value).
// periodDiscount[j] (j = 1..len(snapshots[i])-1) is the single-period
// discount factor stepping from instant j back to instant j-1. American is
// the special case where every simulation step is an exercise instant;
// Bermudan supplies a coarser snapshot table from a finer underlying
// simulation.
func LSMPrice(ot OptionType, k float64, snapshots [][]float64, periodDiscount []float64, onSkip LSMSkipLogger) float64 {
	n := len(snapshots)
	if n == 0 {
		return 0
	}
	m := len(snapshots[0]) - 1 // number of exercise instants (1..m)
	if m < 1 {
		return 0
	}

	cashflow := make([]float64, n)
	for i := 0; i < n; i++ {
		cashflow[i] = VanillaPayoff(ot, snapshots[i][m], k)
	}

	for instant := m - 1; instant >= 1; instant-- {
		disc := periodDiscount[instant+1]
		for i := range cashflow {
			cashflow[i] *= disc
		}

		var idx []int
		var xs, ys []float64
		for i := 0; i < n; i++ {
			s := snapshots[i][instant]
			intrinsic := VanillaPayoff(ot, s, k)
			if intrinsic > 0 {
				idx = append(idx, i)
				xs = append(xs, s/k)
				ys = append(ys, cashflow[i])
			}
		}

		if len(idx) < basisDim {
			if onSkip != nil {
				onSkip(instant, "fewer in-the-money paths than basis dimension")
			}
			continue
		}

		beta, err := regressContinuation(xs, ys)
		if err != nil {
			if onSkip != nil {
				onSkip(instant, "singular normal-equations matrix")
			}
			continue
		}

		for j, i := range idx {
			continuation := continuationValue(beta, xs[j])
			intrinsic := VanillaPayoff(ot, snapshots[i][instant], k)
			if intrinsic > continuation {
				cashflow[i] = intrinsic
			}
		}
	}

	finalDisc := periodDiscount[1]
	sum := 0.0
	for _, cf := range cashflow {
		sum += cf * finalDisc
	}
	return sum / float64(n)
}

package riemann

// Series holds left and right sums for n = 1..len(N).
type Series struct {
	N     []int
	Left  []float64
	Right []float64
}

// Convergence sweeps n = 1..nMax and records the left and right sums of f
// over [a,b].
//
// Errors:
//   - ErrNilFunc, ErrNonFinite, ErrInvalidBounds as in Sum.
//   - ErrBadSubdivisions if nMax < 1.
//   - ErrTooManySubdivisions if nMax > MaxConvergenceMax.
//
// Complexity: O(nMax²) evaluations of f, O(nMax) space.
func Convergence(f Func, a, b float64, nMax int) (Series, error) {
	if err := validate(MethodConvergence, f, a, b); err != nil {
		return Series{}, err
	}
	if nMax < 1 {
		return Series{}, riemannErrorf(MethodConvergence, ErrBadSubdivisions, "nMax=%d", nMax)
	}
	if nMax > MaxConvergenceMax {
		return Series{}, riemannErrorf(MethodConvergence, ErrTooManySubdivisions, "nMax=%d", nMax)
	}

	s := Series{
		N:     make([]int, nMax),
		Left:  make([]float64, nMax),
		Right: make([]float64, nMax),
	}
	for k := 0; k < nMax; k++ {
		n := k + 1
		dx := (b - a) / float64(n)
		s.N[k] = n
		s.Left[k] = sumValue(f, a, dx, n, Left)
		s.Right[k] = sumValue(f, a, dx, n, Right)
	}

	return s, nil
}

// Len returns the number of swept subdivision counts.
func (s Series) Len() int { return len(s.N) }

package interp

// Lagrange evaluates the Lagrange interpolating polynomial through
// (xs[i], ys[i]) at x.
//
// Algorithm:
//  1. For each sample i, start a basis term at 1.
//  2. Multiply in (x − xⱼ)/(xᵢ − xⱼ) for every j ≠ i. The whole difference
//     x − xⱼ is divided, so the term is 1 at xᵢ and 0 at every other xⱼ.
//  3. Accumulate yᵢ · term.
//
// A single sample yields the constant ys[0] for every x.
//
// Errors:
//   - ErrEmptySamples, ErrLengthMismatch, ErrNonFinite, ErrDuplicateX.
//
// Complexity: O(m²) time, O(m) space for validation.
func Lagrange(xs, ys []float64, x float64) (float64, error) {
	if err := validateSamples(MethodLagrange, xs, ys); err != nil {
		return 0, err
	}

	return lagrange(xs, ys, x), nil
}

// LagrangeGrid evaluates the interpolant at every point of grid, validating
// the samples once. The result has len(grid) entries.
func LagrangeGrid(xs, ys, grid []float64) ([]float64, error) {
	if err := validateSamples(MethodLagrange, xs, ys); err != nil {
		return nil, err
	}
	out := make([]float64, len(grid))
	for k, x := range grid {
		out[k] = lagrange(xs, ys, x)
	}

	return out, nil
}

// lagrange assumes validated input.
func lagrange(xs, ys []float64, x float64) float64 {
	var val float64
	for i := range xs {
		term := 1.0
		for j := range xs {
			if j == i {
				continue
			}
			term *= (x - xs[j]) / (xs[i] - xs[j])
		}
		val += term * ys[i]
	}

	return val
}

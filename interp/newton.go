// SPDX-License-Identifier: MIT
// Package: numeric/interp
//
// newton.go — Newton form of the interpolating polynomial.
//
// Contract:
//   • DividedDifferences never mutates its inputs.
//   • The coefficient table is immutable once built; Newton hands out copies.
//   • NewtonEval assumes a table produced by DividedDifferences on the same xs.

package interp

import "slices"

// DividedDifferences builds the Newton coefficient table c[0..n-1] for the
// samples (xs[i], ys[i]).
//
// Algorithm (in place on a copy of ys):
//
//	for j = 1..n−1:
//	    for i = n−1 down to j:
//	        c[i] = (c[i] − c[i−1]) / (x[i] − x[i−j])
//
// The inner sweep runs from high to low index: c[i−1] must still hold the
// previous order's value when c[i] is updated.
//
// Errors:
//   - ErrEmptySamples, ErrLengthMismatch, ErrNonFinite, ErrDuplicateX.
//
// Complexity: O(n²) time, O(n) space.
func DividedDifferences(xs, ys []float64) ([]float64, error) {
	if err := validateSamples(MethodDividedDifferences, xs, ys); err != nil {
		return nil, err
	}

	n := len(xs)
	coef := slices.Clone(ys)
	for j := 1; j < n; j++ {
		for i := n - 1; i >= j; i-- {
			coef[i] = (coef[i] - coef[i-1]) / (xs[i] - xs[i-j])
		}
	}

	return coef, nil
}

// NewtonEval evaluates the Newton-form polynomial with nodes xs and
// coefficients coef at v using nested (Horner) multiplication:
//
//	r = c[n−1]
//	for i = n−2 down to 0: r = r·(v − x[i]) + c[i]
//
// With a single coefficient the result is coef[0] for every v.
// An empty table evaluates to 0; xs must hold at least len(coef)−1 nodes.
//
// Complexity: O(n) time, O(1) space.
func NewtonEval(xs, coef []float64, v float64) float64 {
	n := len(coef)
	if n == 0 {
		return 0
	}
	r := coef[n-1]
	for i := n - 2; i >= 0; i-- {
		r = r*(v-xs[i]) + coef[i]
	}

	return r
}

// Newton is a ready-to-evaluate Newton interpolant.
type Newton struct {
	xs   []float64
	coef []float64
}

// NewNewton validates the samples and builds the coefficient table.
// The returned value keeps private copies of xs and the coefficients.
func NewNewton(xs, ys []float64) (*Newton, error) {
	coef, err := DividedDifferences(xs, ys)
	if err != nil {
		return nil, err
	}

	return &Newton{xs: slices.Clone(xs), coef: coef}, nil
}

// At evaluates the interpolant at v.
func (nw *Newton) At(v float64) float64 {
	return NewtonEval(nw.xs, nw.coef, v)
}

// AtGrid evaluates the interpolant at every point of grid.
func (nw *Newton) AtGrid(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, v := range grid {
		out[i] = nw.At(v)
	}

	return out
}

// Coefficients returns a copy of the divided-difference table.
func (nw *Newton) Coefficients() []float64 { return slices.Clone(nw.coef) }

// Nodes returns a copy of the interpolation nodes.
func (nw *Newton) Nodes() []float64 { return slices.Clone(nw.xs) }

// Degree returns the maximal degree of the interpolant (len(samples) − 1).
func (nw *Newton) Degree() int { return len(nw.coef) - 1 }

// SPDX-License-Identifier: MIT
// Package: numeric/interp
//
// validate.go — shared input checks for every interpolation entry point.
//
// Order of checks (first failure wins):
//   empty → length mismatch → NaN/Inf → duplicate abscissa.

package interp

import (
	"math"
	"slices"
)

// validateSamples checks xs/ys against the interpolation preconditions.
//
// Complexity: O(m log m) time (duplicate scan on a sorted copy), O(m) space.
func validateSamples(method string, xs, ys []float64) error {
	if len(xs) == 0 {
		return interpErrorf(method, ErrEmptySamples, "got 0 samples")
	}
	if len(xs) != len(ys) {
		return interpErrorf(method, ErrLengthMismatch, "len(xs)=%d, len(ys)=%d", len(xs), len(ys))
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return interpErrorf(method, ErrNonFinite, "sample %d = (%v, %v)", i, xs[i], ys[i])
		}
	}

	return checkDistinct(method, xs)
}

// checkDistinct reports ErrDuplicateX when two abscissas compare equal.
func checkDistinct(method string, xs []float64) error {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return interpErrorf(method, ErrDuplicateX, "x=%v appears more than once", sorted[i])
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

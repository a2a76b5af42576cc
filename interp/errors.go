// SPDX-License-Identifier: MIT
// Package: numeric/interp
//
// errors.go — sentinel errors for the interp package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Implementations attach context with %w (see interpErrorf).
//   • Evaluation never divides by a zero (xᵢ − xⱼ): duplicates are rejected
//     by validation before any arithmetic runs.

package interp

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySamples indicates that no sample points were supplied.
	ErrEmptySamples = errors.New("interp: sample set is empty")

	// ErrLengthMismatch indicates len(xs) != len(ys) (or len(coef) for Newton).
	ErrLengthMismatch = errors.New("interp: xs and ys length mismatch")

	// ErrNonFinite indicates a NaN or ±Inf sample coordinate.
	ErrNonFinite = errors.New("interp: NaN or Inf in samples")

	// ErrDuplicateX indicates two samples share the same abscissa, which makes
	// the interpolation problem ill-posed (a zero divisor in every form).
	ErrDuplicateX = errors.New("interp: duplicate x values")
)

// interpErrorf prefixes err with the method name and a formatted detail
// while keeping err reachable through errors.Is.
func interpErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

// SPDX-License-Identifier: MIT
// Package: numeric/riemann
//
// errors.go — sentinel errors for the riemann package.
//
// Error policy:
//   • Sentinels only; callers branch with errors.Is.
//   • ErrInvalidBounds, ErrBadSubdivisions and ErrTooManySubdivisions returned by Config.Normalize are
//     recoverable: the returned Config already holds the fallback values.

package riemann

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBounds indicates the upper bound is not greater than the lower one.
	ErrInvalidBounds = errors.New("riemann: upper bound must be greater than lower bound")

	// ErrBadSubdivisions indicates a subdivision count below 1.
	ErrBadSubdivisions = errors.New("riemann: subdivision count must be at least 1")

	// ErrTooManySubdivisions indicates a subdivision count above MaxSubdivisions
	// (or a sweep longer than MaxConvergenceMax).
	ErrTooManySubdivisions = errors.New("riemann: subdivision count too large")

	// ErrNonFinite indicates a NaN or ±Inf bound.
	ErrNonFinite = errors.New("riemann: NaN or Inf bound")

	// ErrNilFunc indicates a nil integrand.
	ErrNilFunc = errors.New("riemann: integrand is nil")
)

// riemannErrorf prefixes err with the method name and a formatted detail.
func riemannErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}

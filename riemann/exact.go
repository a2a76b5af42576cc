// SPDX-License-Identifier: MIT
// Package: numeric/riemann
//
// exact.go — reference integral used as ground truth for the sums.
//
// Gauss–Legendre quadrature with k nodes is exact for polynomials of degree
// ≤ 2k−1. The node count starts at MinQuadNodes and doubles until two
// successive estimates agree to QuadTolerance (relative) or MaxQuadNodes is
// reached; the last difference is reported as the error estimate.

package riemann

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

const (
	// MinQuadNodes is the first Gauss–Legendre node count tried.
	MinQuadNodes = 8
	// MaxQuadNodes bounds the refinement.
	MaxQuadNodes = 1024
	// QuadTolerance is the relative agreement required between refinements.
	QuadTolerance = 1e-12
)

// Exact returns a high-accuracy estimate of ∫_a^b f(x) dx and an estimate
// of its absolute error.
//
// Errors:
//   - ErrNilFunc, ErrNonFinite, ErrInvalidBounds (same checks as Sum).
func Exact(f Func, a, b float64) (value, errEst float64, err error) {
	if err = validate(MethodExact, f, a, b); err != nil {
		return 0, 0, err
	}

	g := func(x float64) float64 { return f(x) }
	prev := quad.Fixed(g, a, b, MinQuadNodes, quad.Legendre{}, 0)
	for k := 2 * MinQuadNodes; k <= MaxQuadNodes; k *= 2 {
		cur := quad.Fixed(g, a, b, k, quad.Legendre{}, 0)
		errEst = math.Abs(cur - prev)
		prev = cur
		if errEst <= QuadTolerance*math.Max(1, math.Abs(cur)) {
			break
		}
	}

	return prev, errEst, nil
}

// MeanValue returns exact/(b−a), the height of the rectangle over [a,b]
// whose area equals the integral. Callers guarantee b > a.
func MeanValue(exact, a, b float64) float64 {
	return exact / (b - a)
}

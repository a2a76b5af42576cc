package interp

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Grid returns samples evenly spaced points covering
// [min(xs) − margin, max(xs) + margin], endpoints included.
//
// Errors:
//   - ErrEmptySamples if xs is empty.
//   - ErrNonFinite if xs or margin holds NaN/Inf.
//   - ErrEmptySamples (wrapped with the count) if samples < 2.
func Grid(xs []float64, margin float64, samples int) ([]float64, error) {
	if len(xs) == 0 {
		return nil, interpErrorf(MethodGrid, ErrEmptySamples, "no abscissas")
	}
	if samples < 2 {
		return nil, interpErrorf(MethodGrid, ErrEmptySamples, "need at least 2 grid points, got %d", samples)
	}
	if !isFinite(margin) {
		return nil, interpErrorf(MethodGrid, ErrNonFinite, "margin=%v", margin)
	}
	for i, x := range xs {
		if !isFinite(x) {
			return nil, interpErrorf(MethodGrid, ErrNonFinite, "x[%d]=%v", i, x)
		}
	}

	lo, hi := slices.Min(xs)-margin, slices.Max(xs)+margin

	return floats.Span(make([]float64, samples), lo, hi), nil
}

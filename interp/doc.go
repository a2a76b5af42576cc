// Package interp evaluates polynomial interpolants through a finite set of
// sample points, in Lagrange form and in Newton (divided-difference) form.
//
// 🚀 What is polynomial interpolation?
//
//	Given m samples (x₀,y₀)…(xₘ₋₁,yₘ₋₁) with pairwise distinct abscissas,
//	there is exactly one polynomial P of degree ≤ m−1 with P(xᵢ) = yᵢ.
//	Both forms below compute that same polynomial; they differ only in
//	how the work is arranged.
//
// ✨ Key features:
//   - Lagrange:  P(x) = Σᵢ yᵢ · Πⱼ≠ᵢ (x − xⱼ)/(xᵢ − xⱼ), O(m²) per point
//   - Newton:    coefficient table built once in O(m²), then O(m) Horner
//     evaluation per point
//   - up-front validation: empty input, length mismatch, NaN/Inf and
//     duplicate abscissas are reported as sentinel errors, never as
//     ±Inf/NaN results
//   - evaluation grids over [min(x)−margin, max(x)+margin] for plotting
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numeric/interp"
//
//	xs := []float64{600, 800, 1000, 1300}
//	ys := []float64{1.43, 2.55, 2.71, 2.61}
//
//	v, err := interp.Lagrange(xs, ys, 1200)
//
//	nw, err := interp.NewNewton(xs, ys)
//	w := nw.At(1200) // v == w within rounding
//
// Errors:
//
//	ErrEmptySamples, ErrLengthMismatch, ErrNonFinite, ErrDuplicateX.
//	Match them with errors.Is; messages carry the method name as prefix.
package interp

package riemann

import "math"

// Sum computes the Riemann sum of f over [a,b] with n equal cells, sampling
// each cell according to rule.
//
// Errors:
//   - ErrNilFunc if f is nil.
//   - ErrNonFinite if a or b is NaN/Inf.
//   - ErrInvalidBounds if b ≤ a.
//   - ErrBadSubdivisions if n < 1.
//   - ErrTooManySubdivisions if n > MaxSubdivisions.
//
// Complexity: O(n) time, O(n) space for the returned samples.
func Sum(f Func, a, b float64, n int, rule Rule) (Approximation, error) {
	if err := validate(MethodSum, f, a, b); err != nil {
		return Approximation{}, err
	}
	if n < 1 {
		return Approximation{}, riemannErrorf(MethodSum, ErrBadSubdivisions, "n=%d", n)
	}
	if n > MaxSubdivisions {
		return Approximation{}, riemannErrorf(MethodSum, ErrTooManySubdivisions, "n=%d", n)
	}

	dx := (b - a) / float64(n)
	ap := Approximation{
		Rule: rule,
		A:    a,
		B:    b,
		N:    n,
		Dx:   dx,
		X:    make([]float64, n),
		Y:    make([]float64, n),
	}

	var s float64
	for i := 0; i < n; i++ {
		x := rule.Sample(a, dx, i)
		y := f(x)
		ap.X[i], ap.Y[i] = x, y
		s += y
	}
	ap.Value = s * dx

	return ap, nil
}

// LeftSum is Sum with the Left rule.
func LeftSum(f Func, a, b float64, n int) (Approximation, error) { return Sum(f, a, b, n, Left) }

// RightSum is Sum with the Right rule.
func RightSum(f Func, a, b float64, n int) (Approximation, error) { return Sum(f, a, b, n, Right) }

// MidpointSum is Sum with the Midpoint rule.
func MidpointSum(f Func, a, b float64, n int) (Approximation, error) {
	return Sum(f, a, b, n, Midpoint)
}

// sumValue computes only the scalar sum, without retaining samples.
func sumValue(f Func, a, dx float64, n int, rule Rule) float64 {
	var s float64
	for i := 0; i < n; i++ {
		s += f(rule.Sample(a, dx, i))
	}

	return s * dx
}

// validate runs the checks shared by every entry point taking (f, a, b).
func validate(method string, f Func, a, b float64) error {
	if f == nil {
		return riemannErrorf(method, ErrNilFunc, "f=nil")
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return riemannErrorf(method, ErrNonFinite, "a=%v, b=%v", a, b)
	}
	if b <= a {
		return riemannErrorf(method, ErrInvalidBounds, "a=%v, b=%v", a, b)
	}

	return nil
}

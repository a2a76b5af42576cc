package riemann

import "math"

// Fallback values substituted by Config.Normalize.
const (
	DefaultLowerBound   = 0.0
	DefaultUpperBound   = 2.0
	DefaultSubdivisions = 4

	// DefaultConvergenceMax is the largest n swept by the convergence plot.
	DefaultConvergenceMax = 1000

	// MaxSubdivisions caps n for a single sum; every cell is also drawn.
	MaxSubdivisions = 10_000

	// MaxConvergenceMax caps the sweep length; the sweep costs O(nMax²).
	MaxConvergenceMax = 10_000
)

// Config carries the integration bounds and the subdivision count.
type Config struct {
	LowerBound   float64
	UpperBound   float64
	Subdivisions int
}

// DefaultConfig returns a=0, b=2, n=4.
func DefaultConfig() Config {
	return Config{
		LowerBound:   DefaultLowerBound,
		UpperBound:   DefaultUpperBound,
		Subdivisions: DefaultSubdivisions,
	}
}

// Normalize returns c unchanged when it is usable. Otherwise it returns
// DefaultConfig() together with the reason:
//   - ErrNonFinite if a bound is NaN/Inf,
//   - ErrInvalidBounds if UpperBound ≤ LowerBound,
//   - ErrBadSubdivisions if Subdivisions < 1.
//
// A Subdivisions above MaxSubdivisions keeps the bounds and is clamped to
// MaxSubdivisions, reported as ErrTooManySubdivisions.
//
// Bounds are checked before the subdivision count. The error is a notice:
// the returned Config is always valid.
func (c Config) Normalize() (Config, error) {
	a, b := c.LowerBound, c.UpperBound
	switch {
	case math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0):
		return DefaultConfig(), riemannErrorf(MethodNormalize, ErrNonFinite, "a=%v, b=%v", a, b)
	case b <= a:
		return DefaultConfig(), riemannErrorf(MethodNormalize, ErrInvalidBounds, "a=%v, b=%v", a, b)
	case c.Subdivisions < 1:
		return DefaultConfig(), riemannErrorf(MethodNormalize, ErrBadSubdivisions, "n=%d", c.Subdivisions)
	case c.Subdivisions > MaxSubdivisions:
		n := c.Subdivisions
		c.Subdivisions = MaxSubdivisions

		return c, riemannErrorf(MethodNormalize, ErrTooManySubdivisions, "n=%d", n)
	}

	return c, nil
}

// Width returns UpperBound − LowerBound.
func (c Config) Width() float64 { return c.UpperBound - c.LowerBound }

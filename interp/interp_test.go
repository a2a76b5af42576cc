package interp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numeric/interp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Shared fixtures: the five-point dataset of the Newton program and its
// four-point prefix used by the Lagrange program.
var (
	xs5 = []float64{600, 800, 1000, 1300, 1400}
	ys5 = []float64{1.43, 2.55, 2.71, 2.61, 2.51}
	xs4 = []float64{600, 800, 1000, 1300}
	ys4 = []float64{1.43, 2.55, 2.71, 2.61}
)

const relTol = 1e-9

// TestValidation_Sentinels checks that every entry point reports the same
// sentinel for the same malformed input.
func TestValidation_Sentinels(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		ys   []float64
		want error
	}{
		{"empty", nil, nil, interp.ErrEmptySamples},
		{"length mismatch", []float64{1, 2}, []float64{1}, interp.ErrLengthMismatch},
		{"NaN x", []float64{1, math.NaN()}, []float64{1, 2}, interp.ErrNonFinite},
		{"Inf y", []float64{1, 2}, []float64{math.Inf(-1), 2}, interp.ErrNonFinite},
		{"duplicate x", []float64{1, 2, 1}, []float64{3, 4, 5}, interp.ErrDuplicateX},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := interp.Lagrange(tc.xs, tc.ys, 0)
			assert.ErrorIs(t, err, tc.want, "Lagrange")

			_, err = interp.LagrangeGrid(tc.xs, tc.ys, []float64{0, 1})
			assert.ErrorIs(t, err, tc.want, "LagrangeGrid")

			_, err = interp.DividedDifferences(tc.xs, tc.ys)
			assert.ErrorIs(t, err, tc.want, "DividedDifferences")

			_, err = interp.NewNewton(tc.xs, tc.ys)
			assert.ErrorIs(t, err, tc.want, "NewNewton")
		})
	}
}

// TestDuplicateX_MessageHasMethod verifies the method prefix on wrapped errors.
func TestDuplicateX_MessageHasMethod(t *testing.T) {
	_, err := interp.Lagrange([]float64{2, 2}, []float64{1, 1}, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), interp.MethodLagrange)

	_, err = interp.DividedDifferences([]float64{2, 2}, []float64{1, 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), interp.MethodDividedDifferences)
}

// TestSingleSample_IsConstant: a one-point set interpolates as the constant y₀.
func TestSingleSample_IsConstant(t *testing.T) {
	xs, ys := []float64{3}, []float64{-7.5}
	nw, err := interp.NewNewton(xs, ys)
	require.NoError(t, err)
	assert.Equal(t, 0, nw.Degree())

	for _, x := range []float64{-1e6, -1, 0, 3, 42.5, 1e9} {
		v, err := interp.Lagrange(xs, ys, x)
		require.NoError(t, err)
		assert.Equal(t, -7.5, v, "Lagrange at %v", x)
		assert.Equal(t, -7.5, nw.At(x), "Newton at %v", x)
	}
}

// TestNodes_Reproduced: both forms return yᵢ at every xᵢ.
func TestNodes_Reproduced(t *testing.T) {
	for _, set := range []struct{ xs, ys []float64 }{{xs4, ys4}, {xs5, ys5}} {
		nw, err := interp.NewNewton(set.xs, set.ys)
		require.NoError(t, err)
		for i, x := range set.xs {
			l, err := interp.Lagrange(set.xs, set.ys, x)
			require.NoError(t, err)
			assert.InEpsilon(t, set.ys[i], l, relTol, "Lagrange at node %d", i)
			assert.InEpsilon(t, set.ys[i], nw.At(x), relTol, "Newton at node %d", i)
		}
	}
}

// TestLagrangeNewton_Agree is the regression guard for the basis-term
// grouping: the two forms build the same polynomial only when the whole
// difference (x − xⱼ) is divided by (xᵢ − xⱼ).
func TestLagrangeNewton_Agree(t *testing.T) {
	grid, err := interp.Grid(xs5, interp.DefaultMargin, 50)
	require.NoError(t, err)

	nw, err := interp.NewNewton(xs5, ys5)
	require.NoError(t, err)
	lg, err := interp.LagrangeGrid(xs5, ys5, grid)
	require.NoError(t, err)

	for i, x := range grid {
		assert.InDelta(t, lg[i], nw.At(x), 1e-9*math.Max(1, math.Abs(lg[i])), "x=%v", x)
	}
	assert.InDelta(t, 2.654857, nw.At(1200), 1e-6)
}

// TestLagrange_FourPointValue pins the value printed by the Lagrange program.
func TestLagrange_FourPointValue(t *testing.T) {
	v, err := interp.Lagrange(xs4, ys4, 1200)
	require.NoError(t, err)
	assert.InDelta(t, 2.577429, v, 1e-6)
}

// TestLagrange_ReproducesPolynomial: m samples of a degree m−1 polynomial
// give back that polynomial everywhere.
func TestLagrange_ReproducesPolynomial(t *testing.T) {
	p := func(x float64) float64 { return 2*x*x*x - x + 4 }
	xs := []float64{-2, -0.5, 1, 3}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p(x)
	}
	for _, x := range []float64{-3, 0, 0.25, 2, 5} {
		v, err := interp.Lagrange(xs, ys, x)
		require.NoError(t, err)
		assert.InDelta(t, p(x), v, 1e-9, "x=%v", x)
	}
}

// TestDividedDifferences_Quadratic checks the table for y = x² on 1,2,3:
// c = [f[x0], f[x0,x1], f[x0,x1,x2]] = [1, 3, 1].
func TestDividedDifferences_Quadratic(t *testing.T) {
	ys := []float64{1, 4, 9}
	coef, err := interp.DividedDifferences([]float64{1, 2, 3}, ys)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 1}, coef)
	assert.Equal(t, []float64{1, 4, 9}, ys, "input must not be mutated")

	assert.InDelta(t, 6.25, interp.NewtonEval([]float64{1, 2, 3}, coef, 2.5), 1e-12)
}

// TestDividedDifferences_Leading checks the first coefficient equals y₀ and
// the table length matches the input.
func TestDividedDifferences_Leading(t *testing.T) {
	coef, err := interp.DividedDifferences(xs5, ys5)
	require.NoError(t, err)
	require.Len(t, coef, len(xs5))
	assert.Equal(t, ys5[0], coef[0])
	assert.InDelta(t, (ys5[1]-ys5[0])/(xs5[1]-xs5[0]), coef[1], 1e-15)
}

// TestNewtonEval_Empty returns zero for an empty table.
func TestNewtonEval_Empty(t *testing.T) {
	assert.Equal(t, 0.0, interp.NewtonEval(nil, nil, 5))
}

// TestNewton_CopiesAreDefensive verifies accessors do not leak internals.
func TestNewton_CopiesAreDefensive(t *testing.T) {
	xs := []float64{0, 1, 2}
	nw, err := interp.NewNewton(xs, []float64{0, 1, 4})
	require.NoError(t, err)

	before := nw.At(1.5)
	c := nw.Coefficients()
	c[0] = 100
	n := nw.Nodes()
	n[0] = 100
	xs[0] = 100

	assert.Equal(t, before, nw.At(1.5))
	assert.Equal(t, 2, nw.Degree())
	assert.Equal(t, []float64{2.25, 9}, nw.AtGrid([]float64{1.5, 3}))
}

// TestGrid checks bounds, length and invalid inputs.
func TestGrid(t *testing.T) {
	g, err := interp.Grid(xs4, interp.DefaultMargin, interp.DefaultGridSamples)
	require.NoError(t, err)
	require.Len(t, g, interp.DefaultGridSamples)
	assert.Equal(t, 599.0, g[0])
	assert.InDelta(t, 1301.0, g[len(g)-1], 1e-9)
	for i := 1; i < len(g); i++ {
		assert.Less(t, g[i-1], g[i])
	}

	_, err = interp.Grid(nil, 1, 10)
	assert.ErrorIs(t, err, interp.ErrEmptySamples)
	_, err = interp.Grid(xs4, 1, 1)
	assert.ErrorIs(t, err, interp.ErrEmptySamples)
	_, err = interp.Grid(xs4, math.NaN(), 10)
	assert.ErrorIs(t, err, interp.ErrNonFinite)
}

// TestSamples covers the XYer adapter.
func TestSamples(t *testing.T) {
	s, err := interp.NewSamples(xs4, ys4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	x, y := s.XY(2)
	assert.Equal(t, 1000.0, x)
	assert.Equal(t, 2.71, y)

	gx, gy := s.Split()
	assert.Equal(t, xs4, gx)
	assert.Equal(t, ys4, gy)

	_, err = interp.NewSamples(xs4, ys5)
	assert.ErrorIs(t, err, interp.ErrLengthMismatch)
}

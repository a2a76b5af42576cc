package interp_test

import (
	"testing"

	"github.com/katalvlaran/numeric/interp"
)

// benchSamples returns n samples of a smooth function on Chebyshev-like spacing.
func benchSamples(n int) (xs, ys []float64) {
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(i) * 0.5
		ys[i] = xs[i] * xs[i]
	}

	return xs, ys
}

// BenchmarkLagrangeGrid_20 evaluates a 20-point interpolant on the default grid.
func BenchmarkLagrangeGrid_20(b *testing.B) {
	xs, ys := benchSamples(20)
	grid, err := interp.Grid(xs, interp.DefaultMargin, interp.DefaultGridSamples)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := interp.LagrangeGrid(xs, ys, grid); err != nil {
			b.Fatalf("LagrangeGrid failed: %v", err)
		}
	}
}

// BenchmarkNewtonGrid_20 builds the table once and evaluates on the default grid.
func BenchmarkNewtonGrid_20(b *testing.B) {
	xs, ys := benchSamples(20)
	grid, err := interp.Grid(xs, interp.DefaultMargin, interp.DefaultGridSamples)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nw, err := interp.NewNewton(xs, ys)
		if err != nil {
			b.Fatalf("NewNewton failed: %v", err)
		}
		_ = nw.AtGrid(grid)
	}
}

package riemann_test

import (
	"testing"

	"github.com/katalvlaran/numeric/riemann"
)

// BenchmarkSum_Midpoint10k measures a single 10 000-cell midpoint sum.
func BenchmarkSum_Midpoint10k(b *testing.B) {
	f := riemann.Linear(2, 1)
	for i := 0; i < b.N; i++ {
		if _, err := riemann.MidpointSum(f, 0, 2, 10_000); err != nil {
			b.Fatalf("MidpointSum failed: %v", err)
		}
	}
}

// BenchmarkConvergence_1000 measures the default convergence sweep.
func BenchmarkConvergence_1000(b *testing.B) {
	f := riemann.Linear(2, 1)
	for i := 0; i < b.N; i++ {
		if _, err := riemann.Convergence(f, 0, 2, riemann.DefaultConvergenceMax); err != nil {
			b.Fatalf("Convergence failed: %v", err)
		}
	}
}

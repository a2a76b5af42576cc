// Package riemann approximates definite integrals with left, right and
// midpoint Riemann sums, compares them with a high-accuracy reference
// value, and produces the data behind convergence plots.
//
// 🚀 What is a Riemann sum?
//
//	Split [a,b] into n cells of width dx = (b−a)/n, pick one sample point
//	per cell, and add up f(sample)·dx. The rule decides where the sample
//	sits inside each cell:
//	  • Left     — a + i·dx,        i = 0..n−1
//	  • Right    — a + i·dx,        i = 1..n
//	  • Midpoint — a + (i+½)·dx,    i = 0..n−1
//
// ✨ Key features:
//   - injected integrand (Func), so any f can be tested
//   - reference integral via Gauss–Legendre quadrature (gonum
//     integrate/quad) refined until two successive estimates agree
//   - bounds policy: Config.Normalize substitutes a=0, b=2, n=4 when the
//     requested bounds are unusable, and reports why
//   - convergence sweep n = 1..nMax for left and right sums
//
// ⚙️ Usage:
//
//	f := riemann.Linear(2, 1) // f(x) = 2x + 1
//	cfg, err := riemann.Config{LowerBound: 0, UpperBound: 2, Subdivisions: 4}.Normalize()
//	if err != nil {
//	    // cfg already holds the fallback; warn and continue
//	}
//	rep, err := riemann.Compare(f, cfg)
//	rep.WriteTo(os.Stdout)
//
// For an increasing f, Left ≤ Midpoint ≤ Right for every n ≥ 1; for a
// decreasing f the order is reversed. Left and Right bracket the exact
// integral of any monotone f.
package riemann

// Package numeric is a small collection of textbook numerical methods with
// plots: polynomial interpolation and Riemann-sum integration.
//
// 🚀 What is in the box?
//
//	• interp/  — Lagrange and Newton (divided-difference) interpolation
//	• riemann/ — left, midpoint and right Riemann sums, a Gauss–Legendre
//	             reference integral, bounds policy and convergence sweeps
//	• render/  — gonum/plot figures for both (curve + points, rectangles,
//	             three-panel comparison, convergence)
//	• console/ — prompting for numbers and the shared slog logger
//
// Programs:
//
//	cmd/lagrange — interpolate 4 measurements, write grafico_lagrange.png
//	cmd/newton   — interpolate 5 measurements, write grafico_newton.png
//	cmd/riemann  — integrate 2x + 1 over [a,b], write the *_riemann.png set
//
// Quick example:
//
//	v, _ := interp.Lagrange([]float64{0, 1, 2}, []float64{0, 1, 4}, 1.5) // 2.25
//
//	go run ./cmd/riemann -a 0 -b 2 -n 4
package numeric

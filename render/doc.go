// Package render draws the figures of the interpolation and Riemann
// programs with gonum.org/v1/plot and encodes them as images.
//
// Every routine builds its figure, encodes it and returns. Nothing is
// cached between calls, and files are closed before the routine returns.
//
// Figures:
//   - Interpolation — interpolating curve over a dense grid + sample points.
//   - Riemann       — integrand, shaded area, one rectangle per cell,
//     dashed mean-value line, exact/approximation/error annotations.
//   - Comparison    — the three Riemann rules side by side (1×3 panels).
//   - Convergence   — left and right sums against n, with the exact value.
//
// Each figure kind has a Write* variant taking an io.Writer and a Save*
// variant taking a file path; the image format follows the path extension
// (png when there is none) or WithFormat for writers.
package render

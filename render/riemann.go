// SPDX-License-Identifier: MIT
// Package: numeric/render
//
// riemann.go — single-rule Riemann figure and the shared panel builder used
// by the comparison figure.
//
// Layout of one panel:
//   • integrand over [a,b] (solid line) with the area to y=0 shaded,
//   • one rectangle per cell, spanning the cell and reaching f(sample),
//   • optional dashed line at the mean value exact/(b−a),
//   • optional annotations (exact, approximation, error) pinned to the
//     upper-left corner of the axes.

package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/numeric/riemann"
)

const figureRiemann = "Riemann"

// RiemannFigure describes one Riemann approximation to draw.
//
// Fields:
//   - F      — integrand.
//   - Expr   — human-readable form of F, e.g. "2x + 1".
//   - Approx — the approximation (bounds, cells, samples, value).
//   - Exact  — reference integral over [Approx.A, Approx.B].
//   - Fill   — rectangle/area color; LightBlue when nil.
type RiemannFigure struct {
	F      riemann.Func
	Expr   string
	Approx riemann.Approximation
	Exact  float64
	Fill   color.Color
}

// panelStyle toggles the decorations that differ between the single and
// the comparison layouts.
type panelStyle struct {
	title       string
	yLabel      string
	legend      bool
	meanLine    bool
	annotations bool
	edge        color.Color
	areaAlpha   float64
}

// WriteRiemann encodes a single-rule figure into w.
func WriteRiemann(w io.Writer, fig RiemannFigure, opts ...Option) error {
	cfg := newConfig(DefaultWidth, opts...)
	ap := fig.Approx
	title := fmt.Sprintf("Riemann sum (%s) - f(x) = %s\nApproximation: %.4f | Error: %.4f",
		ap.Rule, fig.Expr, ap.Value, ap.AbsError(fig.Exact))
	if cfg.title != "" {
		title = cfg.title
	}

	p, err := riemannPanel(fig, cfg.samples, panelStyle{
		title:       title,
		yLabel:      "f(x)",
		legend:      true,
		meanLine:    true,
		annotations: true,
		edge:        ColorEdge,
		areaAlpha:   0.3,
	})
	if err != nil {
		return err
	}

	return writePlot(figureRiemann, p, w, cfg)
}

// SaveRiemann writes a single-rule figure to path.
func SaveRiemann(path string, fig RiemannFigure, opts ...Option) error {
	return saveFile(figureRiemann, path, opts, func(w io.Writer, o []Option) error {
		return WriteRiemann(w, fig, o...)
	})
}

// riemannPanel builds the plot for one approximation.
func riemannPanel(fig RiemannFigure, samples int, st panelStyle) (*plot.Plot, error) {
	ap := fig.Approx
	if fig.F == nil || ap.N < 1 || len(ap.X) != ap.N || len(ap.Y) != ap.N || !(ap.B > ap.A) {
		return nil, renderErrorf(figureRiemann, ErrEmptySeries, "n=%d, samples=%d/%d, a=%v, b=%v",
			ap.N, len(ap.X), len(ap.Y), ap.A, ap.B)
	}
	fill := fig.Fill
	if fill == nil {
		fill = LightBlue
	}

	p := newPlot(st.title, "x", st.yLabel)

	// Integrand and the area between it and y=0.
	xs := floats.Span(make([]float64, samples), ap.A, ap.B)
	curve := make(plotter.XYs, samples)
	area := make(plotter.XYs, 0, samples+2)
	area = append(area, plotter.XY{X: ap.A, Y: 0})
	for i, x := range xs {
		curve[i] = plotter.XY{X: x, Y: fig.F(x)}
		area = append(area, curve[i])
	}
	area = append(area, plotter.XY{X: ap.B, Y: 0})

	shade, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, renderErrorf(figureRiemann, ErrEmptySeries, "area: %v", err)
	}
	shade.Color = withAlpha(fill, st.areaAlpha)
	shade.LineStyle.Width = 0
	p.Add(shade)

	// One rectangle per cell.
	for i := 0; i < ap.N; i++ {
		lo, hi := ap.Cell(i)
		h := ap.Y[i]
		rect, err := plotter.NewPolygon(plotter.XYs{{X: lo, Y: 0}, {X: hi, Y: 0}, {X: hi, Y: h}, {X: lo, Y: h}})
		if err != nil {
			return nil, renderErrorf(figureRiemann, ErrEmptySeries, "cell %d: %v", i, err)
		}
		rect.Color = withAlpha(fill, 0.5)
		rect.LineStyle.Color = st.edge
		rect.LineStyle.Width = vg.Points(1)
		p.Add(rect)
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, renderErrorf(figureRiemann, ErrEmptySeries, "curve: %v", err)
	}
	line.LineStyle.Color = ColorEdge
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	if st.legend {
		p.Legend.Add(fmt.Sprintf("f(x) = %s", fig.Expr), line)
	}

	if st.meanLine {
		mean := riemann.MeanValue(fig.Exact, ap.A, ap.B)
		ml, err := plotter.NewLine(plotter.XYs{{X: ap.A, Y: mean}, {X: ap.B, Y: mean}})
		if err != nil {
			return nil, renderErrorf(figureRiemann, ErrEmptySeries, "mean line: %v", err)
		}
		ml.LineStyle.Color = ColorMean
		ml.LineStyle.Width = vg.Points(1.5)
		ml.LineStyle.Dashes = dashed(vg.Points(6))
		p.Add(ml)
		if st.legend {
			p.Legend.Add("Integral mean", ml)
		}
	}
	if st.legend {
		p.Legend.Top = true
	}

	yLo, yHi := verticalRange(curve, ap.Y)
	p.X.Min, p.X.Max = ap.A, ap.B
	p.Y.Min, p.Y.Max = yLo, yHi

	if st.annotations {
		if err := annotate(p, fig.Exact, ap); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// verticalRange returns a y-range containing 0, the curve and every
// rectangle top, with headroom for the annotations.
func verticalRange(curve plotter.XYs, tops []float64) (lo, hi float64) {
	lo, hi = 0, 0
	for _, pt := range curve {
		lo, hi = math.Min(lo, pt.Y), math.Max(hi, pt.Y)
	}
	for _, y := range tops {
		lo, hi = math.Min(lo, y), math.Max(hi, y)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	return lo - span*verticalHeadroomFrac/4, hi + span*verticalHeadroomFrac*2
}

// annotate pins the exact value, the approximation and its error to the
// upper-left corner of the axes. p.X and p.Y ranges must be final.
func annotate(p *plot.Plot, exact float64, ap riemann.Approximation) error {
	xSpan, ySpan := p.X.Max-p.X.Min, p.Y.Max-p.Y.Min
	x := p.X.Min + annotationLeftFrac*xSpan
	y := func(row int) float64 {
		return p.Y.Min + (annotationTopFrac-float64(row)*annotationStepFrac)*ySpan
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: plotter.XYs{{X: x, Y: y(0)}, {X: x, Y: y(1)}, {X: x, Y: y(2)}},
		Labels: []string{
			fmt.Sprintf("Exact integral: %.4f", exact),
			fmt.Sprintf("Approximation: %.4f", ap.Value),
			fmt.Sprintf("Error: %.4f", ap.AbsError(exact)),
		},
	})
	if err != nil {
		return renderErrorf(figureRiemann, ErrEmptySeries, "annotations: %v", err)
	}
	for i, c := range []color.Color{ColorExactText, ColorApproxText, ColorErrorText} {
		labels.TextStyle[i].Color = c
		labels.TextStyle[i].YAlign = text.YTop
	}
	p.Add(labels)

	return nil
}

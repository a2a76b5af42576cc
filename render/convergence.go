package render

import (
	"io"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/numeric/riemann"
)

const figureConvergence = "Convergence"

// ConvergenceFigure is a left/right sum sweep against the exact integral.
type ConvergenceFigure struct {
	Series riemann.Series
	Exact  float64
}

// WriteConvergence encodes the convergence figure into w: the right sums
// as a solid black line, the left sums dashed, the exact value dotted gray.
func WriteConvergence(w io.Writer, fig ConvergenceFigure, opts ...Option) error {
	s := fig.Series
	if s.Len() == 0 || len(s.Left) != s.Len() || len(s.Right) != s.Len() {
		return renderErrorf(figureConvergence, ErrEmptySeries, "n=%d, left=%d, right=%d", s.Len(), len(s.Left), len(s.Right))
	}
	cfg := newConfig(DefaultWidth, opts...)
	title := "Riemann sum approximations"
	if cfg.title != "" {
		title = cfg.title
	}
	p := newPlot(title, "Number of elements", "Riemann sum")

	upper := make(plotter.XYs, s.Len())
	lower := make(plotter.XYs, s.Len())
	for i, n := range s.N {
		upper[i] = plotter.XY{X: float64(n), Y: s.Right[i]}
		lower[i] = plotter.XY{X: float64(n), Y: s.Left[i]}
	}
	first, last := float64(s.N[0]), float64(s.N[s.Len()-1])
	if last == first {
		last = first + 1
	}
	exact := plotter.XYs{{X: first, Y: fig.Exact}, {X: last, Y: fig.Exact}}

	up, err := plotter.NewLine(upper)
	if err != nil {
		return renderErrorf(figureConvergence, ErrEmptySeries, "right sums: %v", err)
	}
	up.LineStyle.Color = ColorBlack
	up.LineStyle.Width = vg.Points(1)

	lo, err := plotter.NewLine(lower)
	if err != nil {
		return renderErrorf(figureConvergence, ErrEmptySeries, "left sums: %v", err)
	}
	lo.LineStyle.Color = ColorBlack
	lo.LineStyle.Width = vg.Points(1)
	lo.LineStyle.Dashes = dashed(vg.Points(5))

	ex, err := plotter.NewLine(exact)
	if err != nil {
		return renderErrorf(figureConvergence, ErrEmptySeries, "exact: %v", err)
	}
	ex.LineStyle.Color = ColorGray
	ex.LineStyle.Width = vg.Points(1)
	ex.LineStyle.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}

	p.Add(up, lo, ex)
	p.Legend.Top = true
	p.Legend.Add("Upper Riemann sum", up)
	p.Legend.Add("Lower Riemann sum", lo)
	p.Legend.Add("Exact integral", ex)

	return writePlot(figureConvergence, p, w, cfg)
}

// SaveConvergence writes the convergence figure to path.
func SaveConvergence(path string, fig ConvergenceFigure, opts ...Option) error {
	return saveFile(figureConvergence, path, opts, func(w io.Writer, o []Option) error {
		return WriteConvergence(w, fig, o...)
	})
}

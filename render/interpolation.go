package render

import (
	"io"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const figureInterpolation = "Interpolation"

// InterpolationFigure describes an interpolating curve and its samples.
//
// Fields:
//   - Title       — plot title.
//   - CurveLabel  — legend entry of the curve.
//   - PointsLabel — legend entry of the samples.
//   - GridX/GridY — dense evaluation grid and interpolant values on it.
//   - Samples     — original points (any plotter.XYer, e.g. interp.Samples).
type InterpolationFigure struct {
	Title       string
	CurveLabel  string
	PointsLabel string
	GridX       []float64
	GridY       []float64
	Samples     plotter.XYer
}

// WriteInterpolation encodes the figure into w.
func WriteInterpolation(w io.Writer, fig InterpolationFigure, opts ...Option) error {
	if len(fig.GridX) < 2 || len(fig.GridX) != len(fig.GridY) || fig.Samples == nil || fig.Samples.Len() == 0 {
		return renderErrorf(figureInterpolation, ErrEmptySeries, "grid=%d/%d points", len(fig.GridX), len(fig.GridY))
	}
	cfg := newConfig(DefaultWidth, opts...)
	title := fig.Title
	if cfg.title != "" {
		title = cfg.title
	}

	p := newPlot(title, "x", "P(x)")

	curve := make(plotter.XYs, len(fig.GridX))
	for i := range fig.GridX {
		curve[i].X, curve[i].Y = fig.GridX[i], fig.GridY[i]
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return renderErrorf(figureInterpolation, ErrEmptySeries, "curve: %v", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = ColorCurve

	pts, err := plotter.NewScatter(fig.Samples)
	if err != nil {
		return renderErrorf(figureInterpolation, ErrEmptySeries, "samples: %v", err)
	}
	pts.GlyphStyle.Color = ColorPoints
	pts.GlyphStyle.Radius = vg.Points(4)
	pts.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(line, pts)
	p.Legend.Top = true
	p.Legend.Add(fig.CurveLabel, line)
	p.Legend.Add(fig.PointsLabel, pts)

	return writePlot(figureInterpolation, p, w, cfg)
}

// SaveInterpolation writes the figure to path.
func SaveInterpolation(path string, fig InterpolationFigure, opts ...Option) error {
	return saveFile(figureInterpolation, path, opts, func(w io.Writer, o []Option) error {
		return WriteInterpolation(w, fig, o...)
	})
}

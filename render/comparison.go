package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const figureComparison = "Comparison"

// ComparisonFills are the panel colors, in Left, Midpoint, Right order.
var ComparisonFills = [3]color.Color{LightBlue, LightGreen, LightCoral}

// WriteComparison encodes the given approximations side by side, one panel
// per figure, under a common title "Riemann sums comparison (n = N)".
// Panels without a Fill get ComparisonFills[i] (cycled).
func WriteComparison(w io.Writer, figs []RiemannFigure, opts ...Option) error {
	if len(figs) == 0 {
		return renderErrorf(figureComparison, ErrEmptySeries, "no panels")
	}
	cfg := newConfig(ComparisonWidth, opts...)
	title := cfg.title
	if title == "" {
		title = fmt.Sprintf("Riemann sums comparison (n = %d)", figs[0].Approx.N)
	}

	row := make([]*plot.Plot, len(figs))
	for i, fig := range figs {
		if fig.Fill == nil {
			fig.Fill = ComparisonFills[i%len(ComparisonFills)]
		}
		ap := fig.Approx
		yLabel := ""
		if i == 0 {
			yLabel = "f(x) = " + fig.Expr
		}
		p, err := riemannPanel(fig, cfg.samples, panelStyle{
			title:     fmt.Sprintf("%s\nApprox: %.4f | Error: %.4f", ap.Rule, ap.Value, ap.AbsError(fig.Exact)),
			yLabel:    yLabel,
			edge:      ColorBlack,
			areaAlpha: 0.2,
		})
		if err != nil {
			return fmt.Errorf("%s: panel %d: %w", figureComparison, i, err)
		}
		row[i] = p
	}

	c, err := draw.NewFormattedCanvas(cfg.width, cfg.height, cfg.format)
	if err != nil {
		return encodeError(figureComparison, err)
	}
	dc := draw.New(c)

	// Reserve a band at the top for the figure title.
	sty := row[0].Title.TextStyle
	sty.Font.Size = vg.Points(14)
	sty.XAlign = text.XCenter
	sty.YAlign = text.YTop
	band := sty.Height(title) + vg.Points(8)
	dc.FillText(sty, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Points(4)}, title)
	body := draw.Crop(dc, 0, 0, 0, -band)

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, body)
	for j, p := range row {
		p.Draw(canvases[0][j])
	}

	if _, err := c.WriteTo(w); err != nil {
		return encodeError(figureComparison, err)
	}

	return nil
}

// SaveComparison writes the comparison figure to path.
func SaveComparison(path string, figs []RiemannFigure, opts ...Option) error {
	return saveFile(figureComparison, path, opts, func(w io.Writer, o []Option) error {
		return WriteComparison(w, figs, o...)
	})
}

package render

import (
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Palette used across figures.
var (
	ColorCurve      = color.NRGBA{R: 31, G: 119, B: 180, A: 255}
	ColorPoints     = color.NRGBA{R: 220, G: 20, B: 20, A: 255}
	ColorEdge       = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	ColorMean       = color.NRGBA{R: 220, G: 20, B: 20, A: 255}
	ColorExactText  = color.NRGBA{R: 0, G: 128, B: 0, A: 255}
	ColorApproxText = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
	ColorErrorText  = color.NRGBA{R: 220, G: 20, B: 20, A: 255}
	ColorBlack      = color.NRGBA{A: 255}
	ColorGray       = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

	LightBlue  = color.NRGBA{R: 173, G: 216, B: 230, A: 255}
	LightGreen = color.NRGBA{R: 144, G: 238, B: 144, A: 255}
	LightCoral = color.NRGBA{R: 240, G: 128, B: 128, A: 255}
)

// withAlpha returns c with its alpha replaced by a ∈ [0,1].
func withAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*255 + 0.5)

	return n
}

// newPlot returns a plot with title, axis labels and a background grid.
func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	return p
}

// dashed returns a dash pattern of on/off segments of the given length.
func dashed(l vg.Length) []vg.Length { return []vg.Length{l, l} }

// writePlot encodes p into w using cfg's size and format.
func writePlot(figure string, p *plot.Plot, w io.Writer, cfg config) error {
	wt, err := p.WriterTo(cfg.width, cfg.height, cfg.format)
	if err != nil {
		return encodeError(figure, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return encodeError(figure, err)
	}

	return nil
}

// saveFile creates path, hands it to write with the format inferred from
// the extension, and closes it. The file is removed if writing fails.
func saveFile(figure, path string, opts []Option, write func(io.Writer, []Option) error) (err error) {
	if format := formatOf(path); format != "" {
		opts = append(opts, WithFormat(format))
	}

	f, err := os.Create(path)
	if err != nil {
		return encodeError(figure, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = encodeError(figure, cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return write(f, opts)
}

// formatOf returns the lower-cased extension of path when it names a
// supported format, or "" otherwise.
func formatOf(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if supportedFormats[ext] {
		return ext
	}

	return ""
}

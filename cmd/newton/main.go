// Command newton builds the divided-difference table of a fixed set of
// measurements, evaluates the Newton-form polynomial and plots it.
//
// Usage:
//
//	newton [-x 1200] [-out grafico_newton.png] [-v]
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/numeric/console"
	"github.com/katalvlaran/numeric/interp"
	"github.com/katalvlaran/numeric/render"
)

var (
	dataX = []float64{600, 800, 1000, 1300, 1400}
	dataY = []float64{1.43, 2.55, 2.71, 2.61, 2.51}
)

const defaultOutput = "grafico_newton.png"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("newton", flag.ContinueOnError)
	fs.SetOutput(stderr)
	at := fs.Float64("x", 1200, "evaluation point")
	out := fs.String("out", defaultOutput, "output image path")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if math.IsNaN(*at) || math.IsInf(*at, 0) {
		fmt.Fprintf(stderr, "invalid value %v for flag -x: must be finite\n", *at)

		return 2
	}
	log := console.NewLogger(console.LevelFor(*verbose), stderr)

	if err := newton(*at, *out, stdout, log); err != nil {
		log.Error("newton failed", "error", err)

		return 1
	}

	return 0
}

func newton(at float64, out string, stdout io.Writer, log *slog.Logger) error {
	nw, err := interp.NewNewton(dataX, dataY)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Divided differences:")
	for i, c := range nw.Coefficients() {
		fmt.Fprintf(stdout, "  c[%d] = %.6e\n", i, c)
	}
	fmt.Fprintf(stdout, "Estimated polynomial value at x = %g is %.6f\n", at, nw.At(at))

	grid, err := interp.Grid(dataX, interp.DefaultMargin, interp.DefaultGridSamples)
	if err != nil {
		return err
	}
	samples, err := interp.NewSamples(dataX, dataY)
	if err != nil {
		return err
	}
	log.Debug("rendering", "degree", nw.Degree(), "grid", len(grid))

	err = render.SaveInterpolation(out, render.InterpolationFigure{
		Title:       "Newton polynomial interpolation",
		CurveLabel:  "Newton polynomial",
		PointsLabel: "Data points",
		GridX:       grid,
		GridY:       nw.AtGrid(grid),
		Samples:     samples,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Plot saved as '%s'\n", out)

	return nil
}

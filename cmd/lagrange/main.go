// Command lagrange evaluates the Lagrange interpolating polynomial through a
// fixed set of measurements and plots it against the original points.
//
// Usage:
//
//	lagrange [-x 1200] [-save=true] [-out grafico_lagrange.png] [-v]
//
// With -save=false the PNG is written to standard output instead of a file,
// e.g. `lagrange -save=false | display`.
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

// Measurements interpolated by the program.
var (
	dataX = []float64{600, 800, 1000, 1300}
	dataY = []float64{1.43, 2.55, 2.71, 2.61}
)

const defaultOutput = "grafico_lagrange.png"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, prints the estimate and renders the figure.
// It returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lagrange", flag.ContinueOnError)
	fs.SetOutput(stderr)
	at := fs.Float64("x", 1200, "evaluation point")
	save := fs.Bool("save", true, "write the plot to -out (false: stream PNG to stdout)")
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

	if err := lagrange(*at, *save, *out, stdout, log); err != nil {
		log.Error("lagrange failed", "error", err)

		return 1
	}

	return 0
}

func lagrange(at float64, save bool, out string, stdout io.Writer, log *slog.Logger) error {
	v, err := interp.Lagrange(dataX, dataY, at)
	if err != nil {
		return err
	}
	// With -save=false stdout carries the image, so the estimate goes to the log.
	if save {
		fmt.Fprintf(stdout, "Estimated polynomial value at x = %g is %.6f\n", at, v)
	} else {
		log.Info("estimate", "x", at, "value", v)
	}

	grid, err := interp.Grid(dataX, interp.DefaultMargin, interp.DefaultGridSamples)
	if err != nil {
		return err
	}
	curve, err := interp.LagrangeGrid(dataX, dataY, grid)
	if err != nil {
		return err
	}
	samples, err := interp.NewSamples(dataX, dataY)
	if err != nil {
		return err
	}
	fig := render.InterpolationFigure{
		Title:       "Lagrange polynomial",
		CurveLabel:  "Interpolating polynomial",
		PointsLabel: "Original points",
		GridX:       grid,
		GridY:       curve,
		Samples:     samples,
	}
	log.Debug("rendering", "samples", len(dataX), "grid", len(grid))

	if !save {
		return render.WriteInterpolation(stdout, fig)
	}
	if err := render.SaveInterpolation(out, fig); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Plot saved as '%s'\n", out)
	log.Debug("plot saved", "path", out)

	return nil
}

// Command riemann approximates ∫_a^b (2x + 1) dx with left, midpoint and
// right Riemann sums, compares them with the exact value and renders:
//
//	inferior_riemann.png     left rule
//	centrada_riemann.png     midpoint rule
//	superior_riemann.png     right rule
//	comparativo_riemann.png  the three rules side by side
//	convergencia_riemann.png left/right sums for n = 1..nmax
//
// Bounds and subdivision count come from -a, -b, -n; any of them not given
// on the command line is asked for interactively. When b ≤ a (or n < 1)
// the program warns and continues with a=0, b=2, n=4.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/numeric/console"
	"github.com/katalvlaran/numeric/render"
	"github.com/katalvlaran/numeric/riemann"
)

// Integrand of the program.
var (
	integrand = riemann.Linear(2, 1)
	expr      = "2x + 1"
)

const comparisonName = "comparativo_riemann.png"

// params is everything a run needs once input has been collected.
type params struct {
	cfg  riemann.Config
	nMax int
	dir  string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("riemann", flag.ContinueOnError)
	fs.SetOutput(stderr)
	a := fs.Float64("a", 0, "lower integration bound")
	b := fs.Float64("b", 0, "upper integration bound")
	n := fs.Int("n", 0, "number of subintervals")
	nMax := fs.Int("nmax", riemann.DefaultConvergenceMax, "largest n of the convergence plot")
	dir := fs.String("dir", ".", "output directory")
	attempts := fs.Int("attempts", console.DefaultAttempts, "entries allowed per prompted value")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	log := console.NewLogger(console.LevelFor(*verbose), stderr)

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	fmt.Fprintln(stdout, "Definite integrals by Riemann sums")
	fmt.Fprintln(stdout, "----------------------------------")

	cfg := riemann.Config{LowerBound: *a, UpperBound: *b, Subdivisions: *n}
	if err := promptMissing(console.NewPrompter(stdin, stdout, *attempts), set, &cfg); err != nil {
		log.Error("reading parameters", "error", err)
		fmt.Fprintf(stderr, "error: %v\n", err)

		return 1
	}

	switch {
	case *nMax < 1:
		log.Warn("invalid nmax, using default", "nmax", *nMax, "default", riemann.DefaultConvergenceMax)
		*nMax = riemann.DefaultConvergenceMax
	case *nMax > riemann.MaxConvergenceMax:
		log.Warn("nmax too large, clamping", "nmax", *nMax, "max", riemann.MaxConvergenceMax)
		*nMax = riemann.MaxConvergenceMax
	}

	if err := execute(params{cfg: cfg, nMax: *nMax, dir: *dir}, stdout, log); err != nil {
		log.Error("riemann failed", "error", err)

		return 1
	}

	return 0
}

// promptMissing asks for every parameter not given as a flag.
func promptMissing(p *console.Prompter, set map[string]bool, cfg *riemann.Config) error {
	var err error
	if !set["a"] {
		if cfg.LowerBound, err = p.Float("\nLower integration bound (a): "); err != nil {
			return err
		}
	}
	if !set["b"] {
		if cfg.UpperBound, err = p.Float("\nUpper integration bound (b): "); err != nil {
			return err
		}
	}
	if !set["n"] {
		if cfg.Subdivisions, err = p.Int("Number of subintervals (n): "); err != nil {
			return err
		}
	}

	return nil
}

// execute applies the bounds policy, prints the report and renders every figure.
func execute(p params, stdout io.Writer, log *slog.Logger) error {
	cfg, err := p.cfg.Normalize()
	if err != nil {
		if !errors.Is(err, riemann.ErrInvalidBounds) && !errors.Is(err, riemann.ErrBadSubdivisions) &&
			!errors.Is(err, riemann.ErrNonFinite) && !errors.Is(err, riemann.ErrTooManySubdivisions) {
			return err
		}
		fmt.Fprintf(stdout, "Warning: %v. Using a=%g, b=%g, n=%d instead.\n",
			err, cfg.LowerBound, cfg.UpperBound, cfg.Subdivisions)
		log.Warn("parameters substituted",
			"requested_a", p.cfg.LowerBound, "requested_b", p.cfg.UpperBound, "requested_n", p.cfg.Subdivisions,
			"a", cfg.LowerBound, "b", cfg.UpperBound, "n", cfg.Subdivisions)
	}

	rep, err := riemann.Compare(integrand, cfg)
	if err != nil {
		return err
	}
	if _, err := rep.WriteTo(stdout); err != nil {
		return err
	}
	log.Debug("reference integral", "value", rep.Exact, "error_estimate", rep.ExactErr)

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return err
	}

	figs := make([]render.RiemannFigure, 0, len(rep.Sums))
	for _, ap := range rep.Sums {
		fig := render.RiemannFigure{F: integrand, Expr: expr, Approx: ap, Exact: rep.Exact}
		figs = append(figs, fig)
		path := filepath.Join(p.dir, ap.Rule.Slug()+"_riemann.png")
		if err := render.SaveRiemann(path, fig); err != nil {
			return err
		}
		log.Info("plot saved", "rule", ap.Rule.String(), "path", path)
	}

	path := filepath.Join(p.dir, comparisonName)
	if err := render.SaveComparison(path, figs); err != nil {
		return err
	}
	log.Info("plot saved", "figure", "comparison", "path", path)

	series, err := riemann.Convergence(integrand, cfg.LowerBound, cfg.UpperBound, p.nMax)
	if err != nil {
		return err
	}
	path = filepath.Join(p.dir, "convergencia_riemann.png")
	if err := render.SaveConvergence(path, render.ConvergenceFigure{Series: series, Exact: rep.Exact}); err != nil {
		return err
	}
	log.Info("plot saved", "figure", "convergence", "path", path, "nmax", p.nMax)

	return nil
}

package riemann

import (
	"fmt"
	"io"
)

// Report gathers the three approximations of one configuration together
// with the reference integral.
type Report struct {
	Config   Config
	Exact    float64
	ExactErr float64 // error estimate of Exact
	Sums     [len(Rules)]Approximation
}

// Compare runs every rule on cfg and computes the reference integral.
// cfg is used as given; normalize it first if it comes from user input.
func Compare(f Func, cfg Config) (Report, error) {
	rep := Report{Config: cfg}
	exact, errEst, err := Exact(f, cfg.LowerBound, cfg.UpperBound)
	if err != nil {
		return Report{}, err
	}
	rep.Exact, rep.ExactErr = exact, errEst

	for i, r := range Rules {
		ap, err := Sum(f, cfg.LowerBound, cfg.UpperBound, cfg.Subdivisions, r)
		if err != nil {
			return Report{}, err
		}
		rep.Sums[i] = ap
	}

	return rep, nil
}

// Get returns the approximation computed with rule r.
func (rep Report) Get(r Rule) Approximation {
	for _, ap := range rep.Sums {
		if ap.Rule == r {
			return ap
		}
	}

	return Approximation{}
}

// WriteTo prints the results block:
//
//	Results:
//	Exact integral: 6.000000
//	Left sum:     5.000000 | Error: 1.000000
//	Midpoint sum: 6.000000 | Error: 0.000000
//	Right sum:    7.000000 | Error: 1.000000
func (rep Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...interface{}) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)

		return err
	}

	if err := write("\nResults:\nExact integral: %.6f\n", rep.Exact); err != nil {
		return total, err
	}
	for _, ap := range rep.Sums {
		label := ap.Rule.String() + " sum:"
		if err := write("%-13s %.6f | Error: %.6f\n", label, ap.Value, ap.AbsError(rep.Exact)); err != nil {
			return total, err
		}
	}

	return total, nil
}

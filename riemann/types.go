package riemann

import "fmt"

// Method name tokens used as error prefixes.
const (
	MethodSum         = "Sum"
	MethodExact       = "Exact"
	MethodNormalize   = "Normalize"
	MethodConvergence = "Convergence"
)

// Func evaluates a real-valued function at a point.
type Func func(float64) float64

// Linear returns f(x) = m·x + c.
func Linear(m, c float64) Func {
	return func(x float64) float64 { return m*x + c }
}

// Rule selects where each cell is sampled.
type Rule int

const (
	// Left samples each cell at its left edge (lower sum for increasing f).
	Left Rule = iota
	// Midpoint samples each cell at its centre.
	Midpoint
	// Right samples each cell at its right edge (upper sum for increasing f).
	Right
)

// Rules lists every rule in display order.
var Rules = [...]Rule{Left, Midpoint, Right}

// Sample returns the abscissa of cell i for a partition starting at a with
// width dx.
func (r Rule) Sample(a, dx float64, i int) float64 {
	switch r {
	case Right:
		return a + float64(i+1)*dx
	case Midpoint:
		return a + (float64(i)+0.5)*dx
	default:
		return a + float64(i)*dx
	}
}

// String returns the rule name as shown in reports and plot titles.
func (r Rule) String() string {
	switch r {
	case Left:
		return "Left"
	case Midpoint:
		return "Midpoint"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// Slug returns the short token used in output file names
// ("inferior", "centrada", "superior").
func (r Rule) Slug() string {
	switch r {
	case Left:
		return "inferior"
	case Midpoint:
		return "centrada"
	case Right:
		return "superior"
	default:
		return fmt.Sprintf("rule%d", int(r))
	}
}

// Approximation is the result of one Riemann sum.
//
// Fields:
//   - Rule  — sampling rule used.
//   - A, B  — integration bounds.
//   - N     — number of cells.
//   - Dx    — cell width (B−A)/N.
//   - Value — Σ f(X[i])·Dx.
//   - X, Y  — sample abscissas and f at them, one per cell.
type Approximation struct {
	Rule  Rule
	A, B  float64
	N     int
	Dx    float64
	Value float64
	X     []float64
	Y     []float64
}

// Cell returns the edges of cell i. The cell does not depend on the rule:
// a right-rule sample at the right edge still belongs to [left, right].
func (ap Approximation) Cell(i int) (left, right float64) {
	left = ap.A + float64(i)*ap.Dx

	return left, left + ap.Dx
}

// AbsError returns |exact − Value|.
func (ap Approximation) AbsError(exact float64) float64 {
	d := exact - ap.Value
	if d < 0 {
		return -d
	}

	return d
}

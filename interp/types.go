package interp

// Method name tokens used as error prefixes.
const (
	MethodLagrange           = "Lagrange"
	MethodDividedDifferences = "DividedDifferences"
	MethodNewtonEval         = "NewtonEval"
	MethodGrid               = "Grid"
)

// DefaultMargin is how far an evaluation grid extends past the outermost
// samples on each side.
const DefaultMargin = 1.0

// DefaultGridSamples is the number of points in a default evaluation grid.
const DefaultGridSamples = 400

// Point is a single (x, y) sample.
type Point struct {
	X, Y float64
}

// Samples is an ordered sample set. It implements the
// gonum.org/v1/plot/plotter.XYer interface, so a sample set can be handed
// to a scatter plotter as is.
type Samples []Point

// NewSamples zips xs and ys into a Samples value.
// Returns ErrLengthMismatch if the lengths differ.
func NewSamples(xs, ys []float64) (Samples, error) {
	if len(xs) != len(ys) {
		return nil, interpErrorf("NewSamples", ErrLengthMismatch, "len(xs)=%d, len(ys)=%d", len(xs), len(ys))
	}
	s := make(Samples, len(xs))
	for i := range xs {
		s[i] = Point{X: xs[i], Y: ys[i]}
	}

	return s, nil
}

// Len returns the number of samples.
func (s Samples) Len() int { return len(s) }

// XY returns the i-th sample.
func (s Samples) XY(i int) (float64, float64) { return s[i].X, s[i].Y }

// Split returns the abscissas and ordinates as two fresh slices.
func (s Samples) Split() (xs, ys []float64) {
	xs = make([]float64, len(s))
	ys = make([]float64, len(s))
	for i, p := range s {
		xs[i], ys[i] = p.X, p.Y
	}

	return xs, ys
}

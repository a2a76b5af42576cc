package render

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySeries indicates a figure with nothing to draw (no samples,
	// no grid, mismatched lengths, or a nil integrand).
	ErrEmptySeries = errors.New("render: empty or inconsistent series")

	// ErrEncode indicates the figure could not be encoded or written.
	ErrEncode = errors.New("render: encode failed")
)

// renderErrorf prefixes err with the figure name and a formatted detail.
func renderErrorf(figure string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", figure, fmt.Sprintf(format, args...), err)
}

// encodeError wraps a lower-level failure so that both ErrEncode and the
// cause remain reachable via errors.Is.
func encodeError(figure string, cause error) error {
	return fmt.Errorf("%s: %w: %w", figure, ErrEncode, cause)
}

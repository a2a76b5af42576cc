package console

import "errors"

var (
	// ErrMalformedInput indicates every attempt produced an unparsable entry.
	ErrMalformedInput = errors.New("console: malformed numeric input")

	// ErrNoInput indicates the input stream ended before a value was read.
	ErrNoInput = errors.New("console: no input")
)

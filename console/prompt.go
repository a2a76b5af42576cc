package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// DefaultAttempts is how many entries a Prompter accepts per value.
const DefaultAttempts = 3

// Prompter asks for values on Out and reads answers from In, one per line.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	attempts int
}

// NewPrompter returns a Prompter allowing attempts entries per value.
// attempts < 1 selects DefaultAttempts.
func NewPrompter(in io.Reader, out io.Writer, attempts int) *Prompter {
	if attempts < 1 {
		attempts = DefaultAttempts
	}

	return &Prompter{in: bufio.NewReader(in), out: out, attempts: attempts}
}

// Float prompts until a float64 is entered.
func (p *Prompter) Float(prompt string) (float64, error) {
	var v float64
	err := p.ask(prompt, "a number", func(s string) error {
		f, err := cast.ToFloat64E(s)
		v = f

		return err
	})

	return v, err
}

// Int prompts until a decimal integer is entered. Leading zeros are
// ignored ("010" is 10); base prefixes such as 0x are rejected.
func (p *Prompter) Int(prompt string) (int, error) {
	var v int
	err := p.ask(prompt, "an integer", func(s string) error {
		n, err := parseDecimalInt(s)
		v = n

		return err
	})

	return v, err
}

// parseDecimalInt reads s as a base-10 number and accepts it only when it
// is integral and fits in an int.
func parseDecimalInt(s string) (int, error) {
	f, err := cast.ToFloat64E(s)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%q is not an integer", s)
	}

	return int(f), nil
}

// ask runs the prompt/read/parse loop shared by Float and Int.
func (p *Prompter) ask(prompt, want string, parse func(string) error) error {
	var last string
	for i := 0; i < p.attempts; i++ {
		if _, err := fmt.Fprint(p.out, prompt); err != nil {
			return err
		}
		line, err := p.readLine()
		if err != nil {
			return err
		}
		if line != "" {
			if perr := parse(line); perr == nil {
				return nil
			}
		}
		last = line
		if i < p.attempts-1 {
			if _, err := fmt.Fprintf(p.out, "%q is not %s, try again.\n", line, want); err != nil {
				return err
			}
		}
	}

	return fmt.Errorf("%w: %q is not %s (after %d attempts)", ErrMalformedInput, last, want, p.attempts)
}

// readLine returns the next line without surrounding blanks. A final line
// without newline is returned normally; an empty stream yields ErrNoInput.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}

		return "", err
	}

	return strings.TrimSpace(line), nil
}

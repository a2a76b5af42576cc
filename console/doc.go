// Package console reads numeric parameters typed by a user and builds the
// structured logger shared by the command-line programs.
//
// Prompter writes a prompt, reads one line, and parses it with
// github.com/spf13/cast. Malformed entries are reported and re-prompted up
// to Attempts times; after that the call fails with ErrMalformedInput.
// End of input fails with ErrNoInput.
package console

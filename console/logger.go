package console

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a text-format structured logger writing to w
// (stderr when w is nil) at the given minimum level.
func NewLogger(level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger returns a logger that discards everything.
func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))
}

// LevelFor maps a verbosity flag to a level: debug when verbose, info otherwise.
func LevelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

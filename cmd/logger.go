package cmd

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewLogger creates the structured logger of the command line.
// When stderr is a terminal, it uses slog.TextHandler for human-readable output,
// and slog.JSONHandler otherwise.
// Only warnings and errors are logged unless Verbose is set.
func NewLogger() *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), *Verbose)
}

func newLogger(w io.Writer, tty, verbose bool) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		options.Level = slog.LevelDebug
	}
	var handler slog.Handler
	if tty {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

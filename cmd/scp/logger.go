package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger creates the diagnostics logger. An interactive stderr gets
// human-readable text; redirected output (CI, scripts) gets JSON.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}

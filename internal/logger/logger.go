// Package logger builds the structured logger and crash handler for todo.
package logger

import (
	"io"
	"log/slog"
)

// New returns a text slog.Logger writing to w.
// Verbose mode logs at debug level; otherwise only warnings and errors are shown.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return NewWithLevel(w, level)
}

// NewWithLevel returns a text slog.Logger writing records at or above level to w.
func NewWithLevel(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Package logger provides structured logging helpers built on Go's standard
// slog package: environment-aware constructors plus typed attribute helpers
// for the fields this module logs most.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger writing to stderr at info level, suitable for
// production use.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// NewDevelopment returns a text logger writing to stderr at debug level.
func NewDevelopment() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// NewDiscard returns a logger that drops every record. Useful as a default in
// libraries and in tests.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

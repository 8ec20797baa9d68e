package logger

import (
	"io"
	"log/slog"
	"os"
)

// NewConsoleLogger creates a console logger writing text records to stderr,
// leaving stdout to command output.
func NewConsoleLogger(level string) Logger {
	return newConsoleLogger(os.Stderr, level)
}

func newConsoleLogger(w io.Writer, level string) Logger {
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

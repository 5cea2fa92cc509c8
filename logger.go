package gdal

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for binding-level debug logging.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// logger receives debug records for engine entry points. Noop by default.
var logger = NoopLogger()

// SetLogger replaces the package logger. Passing nil restores the noop
// logger. Not safe to call concurrently with binding operations.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	logger = l
}

package slsdb

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with slsdb-specific context.
// This provides structured logging with consistent field names.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithStore tags the logger with the local path and remote key of a store.
func (l *Logger) WithStore(path, key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("path", path, "key", key),
	}
}

// LogRead logs a read operation.
func (l *Logger) LogRead(ctx context.Context, initialized bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed",
			"initialized", initialized,
		)
	}
}

// LogWrite logs a write operation.
func (l *Logger) LogWrite(ctx context.Context, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"bytes", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "write completed",
			"bytes", size,
		)
	}
}

// LogHydrate logs the one-time refresh of the local copy.
// Failures are expected on a first run and are logged at debug level.
func (l *Logger) LogHydrate(ctx context.Context, found bool, report BestEffort, d time.Duration) {
	if !report.OK() {
		l.DebugContext(ctx, "hydration incomplete",
			"found", found,
			"failed", report.Failed(),
			"error", report.Err(),
			"duration", d,
		)
	} else {
		l.DebugContext(ctx, "hydration completed",
			"found", found,
			"duration", d,
		)
	}
}

// LogClean logs a clean operation.
func (l *Logger) LogClean(ctx context.Context, report BestEffort) {
	if !report.OK() {
		l.WarnContext(ctx, "clean completed with failures",
			"failed", report.Failed(),
			"error", report.Err(),
		)
	} else {
		l.InfoContext(ctx, "clean completed")
	}
}

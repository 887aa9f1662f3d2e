package violin

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with violin-specific helpers.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogUpdate logs an applied coordinate update.
func (l *Logger) LogUpdate(rtt time.Duration, estimated, relativeError float64) {
	l.Debug("update applied",
		"rtt", rtt,
		"estimated_sec", estimated,
		"relative_error", relativeError,
	)
}

// LogUpdateSkipped logs an update skipped because of an invalid measurement.
func (l *Logger) LogUpdateSkipped(rtt time.Duration) {
	l.Warn("update skipped: non-positive measurement",
		"rtt", rtt,
	)
}

// LogUpdateRejected logs an update rejected because it would produce a
// non-finite coordinate.
func (l *Logger) LogUpdateRejected(rtt time.Duration, estimated float64) {
	l.Warn("update rejected: non-finite coordinate",
		"rtt", rtt,
		"estimated_sec", estimated,
	)
}

// LogGravity logs a gravity application.
func (l *Logger) LogGravity(force float64) {
	l.Debug("gravity applied",
		"force_sec", force,
	)
}

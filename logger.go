package relu

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with relu-specific context.
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

// WithTier adds a tier field to the logger.
func (l *Logger) WithTier(t Tier) *Logger {
	return &Logger{
		Logger: l.Logger.With("tier", t.String()),
	}
}

// WithLength adds an input length field to the logger.
func (l *Logger) WithLength(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("length", n),
	}
}

// LogVerify logs the comparison of one tier against the oracle.
func (l *Logger) LogVerify(ctx context.Context, t Tier, err error) {
	if err != nil {
		l.ErrorContext(ctx, "tier verification failed",
			"tier", t.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "tier verified",
			"tier", t.String(),
		)
	}
}

// LogAccelerationUnavailable logs that the native tier is skipped.
func (l *Logger) LogAccelerationUnavailable(ctx context.Context, isa string) {
	l.InfoContext(ctx, "hardware acceleration unavailable, native tier skipped",
		"isa", isa,
	)
}

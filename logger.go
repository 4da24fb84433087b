package genalloc

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with genalloc-specific context.
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

// WithSlot adds a slot field to the logger.
func (l *Logger) WithSlot(slot uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("slot", slot),
	}
}

// WithGeneration adds a generation field to the logger.
func (l *Logger) WithGeneration(gen uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("generation", gen),
	}
}

// LogAllocate logs an allocate operation.
func (l *Logger) LogAllocate(slot, gen uint64, reused bool) {
	l.Debug("allocate completed",
		"slot", slot,
		"generation", gen,
		"reused", reused,
	)
}

// LogRetire logs a retire operation.
func (l *Logger) LogRetire(slot, gen uint64, err error) {
	if err != nil {
		l.Warn("retire rejected",
			"slot", slot,
			"generation", gen,
			"error", err,
		)
	} else {
		l.Debug("retire completed",
			"slot", slot,
			"generation", gen,
		)
	}
}

package pbwt

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with pbwt-specific helpers.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithChrom adds a chromosome field to the logger.
func (l *Logger) WithChrom(chrom string) *Logger {
	return &Logger{
		Logger: l.Logger.With("chrom", chrom),
	}
}

// LogSubSample logs a column extraction.
func (l *Logger) LogSubSample(oldM, newM, sites int, err error) {
	if err != nil {
		l.Error("subsample failed",
			"old_m", oldM,
			"new_m", newM,
			"error", err,
		)
	} else {
		l.Debug("subsample completed",
			"old_m", oldM,
			"new_m", newM,
			"sites", sites,
		)
	}
}

// LogSelection logs the construction of a column selection.
func (l *Logger) LogSelection(kind string, requested, columns int, err error) {
	if err != nil {
		l.Error("selection failed",
			"kind", kind,
			"requested", requested,
			"error", err,
		)
	} else {
		l.Debug("selection built",
			"kind", kind,
			"requested", requested,
			"columns", columns,
		)
	}
}

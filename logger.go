package desbordante

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with fields specific to mining/verification
// lifecycle events.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler. If handler is
// nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	})
	return &Logger{Logger: slog.New(handler)}
}

// WithTable adds a table name field to the logger.
func (l *Logger) WithTable(name string) *Logger {
	return &Logger{Logger: l.Logger.With("table", name)}
}

// WithRows adds a row-count field to the logger.
func (l *Logger) WithRows(rows int) *Logger {
	return &Logger{Logger: l.Logger.With("rows", rows)}
}

// WithColumns adds a column-count field to the logger.
func (l *Logger) WithColumns(cols int) *Logger {
	return &Logger{Logger: l.Logger.With("columns", cols)}
}

// LogMine logs the outcome of a mining run.
func (l *Logger) LogMine(ctx context.Context, numFds int, elapsed int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "mine failed", "error", err)
		return
	}
	l.InfoContext(ctx, "mine completed", "num_fds", numFds, "elapsed_ms", elapsed)
}

// LogVerify logs the outcome of a verification run.
func (l *Logger) LogVerify(ctx context.Context, holds bool, numErrorClusters int, elapsed int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "verify failed", "error", err)
		return
	}
	l.InfoContext(ctx, "verify completed",
		"holds", holds,
		"num_error_clusters", numErrorClusters,
		"elapsed_ms", elapsed,
	)
}

// LogLoad logs the outcome of loading a relation.
func (l *Logger) LogLoad(ctx context.Context, path string, rows, cols int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed", "path", path, "error", err)
		return
	}
	l.InfoContext(ctx, "load completed", "path", path, "rows", rows, "columns", cols)
}

// LogCancelled logs that an operation observed cooperative cancellation.
func (l *Logger) LogCancelled(ctx context.Context, phase string) {
	l.WarnContext(ctx, "operation cancelled", "phase", phase)
}

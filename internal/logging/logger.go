// Package logging provides structured logging for the antinode CLI.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"

	m "github.com/mouse-blink/antinode/internal/model"
)

// Logger wraps slog.Logger with helpers for scanner events.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at info level.
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

// NewTextLogger creates a Logger writing human-readable text to w.
// level may be a *slog.LevelVar to adjust verbosity after construction.
func NewTextLogger(w io.Writer, level slog.Leveler) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithPolicy adds the policy name to every record.
func (l *Logger) WithPolicy(p m.Policy) *Logger {
	return &Logger{
		Logger: l.Logger.With("policy", p.Name),
	}
}

// LogParse logs the outcome of parsing an input grid.
func (l *Logger) LogParse(ctx context.Context, path m.Path, stats m.ParseStats, err error) {
	source := string(path)
	if path.Stdin() {
		source = "stdin"
	}

	if err != nil {
		l.ErrorContext(ctx, "parse failed",
			"input", source,
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "grid parsed",
		"input", source,
		"width", stats.Size.X,
		"height", stats.Size.Y,
		"antennas", stats.Antennas,
		"labels", stats.Labels,
		"elapsed", stats.Elapsed,
	)
}

// LogScan logs a completed scan.
func (l *Logger) LogScan(ctx context.Context, result m.ScanResult) {
	l.DebugContext(ctx, "scan completed",
		"max_harmonic", result.Policy.MaxHarmonic,
		"exclude_zero", result.Policy.ExcludeZero,
		"antinodes", result.Count,
		"elapsed", result.Elapsed,
	)
}

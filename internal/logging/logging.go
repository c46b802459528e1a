// Package logging configures the structured logger used by the planning
// pipeline and carries it through context.Context so callers can inject a
// custom logger per execution.
package logging

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New creates a logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Default returns an info-level logger writing to stderr.
func Default() *log.Logger {
	return New(os.Stderr, log.InfoLevel)
}

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a new context with the given logger attached.
// The logger can be retrieved later with FromContext.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger attached to ctx, if any.
func FromContext(ctx context.Context) (*log.Logger, bool) {
	l, ok := ctx.Value(loggerKey).(*log.Logger)
	return l, ok
}

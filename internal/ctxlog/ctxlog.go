// Package ctxlog carries a slog.Logger through a context.Context so that
// nested code logs through the App's isolated logger instead of the
// process-wide default.
package ctxlog

import (
	"context"
	"log/slog"
)

// key is an unexported type so this package's context key cannot collide
// with keys from other packages.
type key struct{}

var loggerKey = key{}

// WithLogger returns a child context carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from ctx, falling back to slog.Default
// when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Package ctxlog carries the *slog.Logger of an operation in its
// context.Context, so phases and backends log without a global.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// discard is handed out when no logger was attached.
var discard = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))

// WithLogger returns a copy of ctx that carries logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger carried by ctx, or one that discards
// everything.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return discard
}

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("returns attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		ctx := WithLogger(context.Background(), logger)

		FromContext(ctx).Info("hello", "k", 1)
		assert.Same(t, logger, FromContext(ctx))
		assert.Contains(t, buf.String(), "msg=hello k=1")
	})

	t.Run("falls back to a silent logger", func(t *testing.T) {
		logger := FromContext(context.Background())
		assert.NotNil(t, logger)
		assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
	})
}

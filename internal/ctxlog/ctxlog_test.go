package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))

	got := FromContext(WithLogger(context.Background(), logger))

	require.Same(t, logger, got)
	got.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestFromContext_WithoutLoggerDiscards(t *testing.T) {
	got := FromContext(context.Background())

	require.NotNil(t, got)
	assert.NotPanics(t, func() { got.Error("dropped") })
}

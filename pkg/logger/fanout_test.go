package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dbprobe/pkg/logger"
)

func TestFanoutHandler(t *testing.T) {
	a := &bytes.Buffer{}
	b := &bytes.Buffer{}

	h := logger.NewFanoutHandler(
		slog.NewTextHandler(a, &slog.HandlerOptions{Level: slog.LevelError}),
		nil,
		slog.NewTextHandler(b, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	log := slog.New(h).With("k", "v").WithGroup("g")

	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))

	log.Info("info", "x", 1)
	log.Error("error", "x", 2)

	assert.NotContains(t, a.String(), "msg=info")
	assert.Contains(t, a.String(), "msg=error")
	assert.Contains(t, b.String(), "msg=info")
	assert.Contains(t, b.String(), "k=v")
	assert.Contains(t, b.String(), "g.x=1")
}

func TestFanoutHandler_Empty(t *testing.T) {
	h := logger.NewFanoutHandler()
	assert.False(t, h.Enabled(context.Background(), slog.LevelError))
	assert.NoError(t, h.Handle(context.Background(), slog.Record{}))
}

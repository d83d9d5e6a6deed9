package slsdb

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/slsdb/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx := context.Background()
	s := newTestStore(t, blobstore.NewMemoryStore(), WithLogger(logger))

	_, err := s.Read(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, document{"a": float64(1)}))
	s.Clean(ctx)

	out := buf.String()
	assert.Contains(t, out, "hydration completed")
	assert.Contains(t, out, "read completed")
	assert.Contains(t, out, "initialized=true")
	assert.Contains(t, out, "write completed")
	assert.Contains(t, out, "clean completed")
	assert.Contains(t, out, "key=db.json")
}

func TestLogger_Failures(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	report := BestEffort{}
	report.record("delete remote", errors.New("denied"))
	logger.LogClean(context.Background(), report)
	logger.LogWrite(context.Background(), 3, errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "clean completed with failures")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "write failed")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

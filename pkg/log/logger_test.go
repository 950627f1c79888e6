package log

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	saltLog "github.com/goto/salt/log"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(keys []string) (*CtxLogger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	saltLogger := saltLog.NewLogrus(
		saltLog.LogrusWithLevel("debug"),
		saltLog.LogrusWithWriter(buf),
		saltLog.LogrusWithFormatter(&logrus.JSONFormatter{}),
	)
	return NewCtxLoggerWithSaltLogger(saltLogger, keys), buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestLogger(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		l, buf := newBufferedLogger([]string{"request_id"})

		levels := map[string]func(context.Context, string, ...interface{}){
			"debug":   l.Debug,
			"info":    l.Info,
			"warning": l.Warn,
			"error":   l.Error,
		}
		for level, fn := range levels {
			fn(nil, "this is a test message", "key", "test-value")

			entry := lastEntry(t, buf)
			assert.Equal(t, level, entry["level"])
			assert.Equal(t, "this is a test message", entry["msg"])
			assert.Equal(t, "test-value", entry["key"])
			assert.NotContains(t, entry, "request_id")
		}
	})

	t.Run("context with key", func(t *testing.T) {
		l, buf := newBufferedLogger([]string{"request_id"})
		ctx := WithValue(context.Background(), "request_id", "abc-123")

		l.Info(ctx, "this is a test info message", "key1", "test-value1")

		entry := lastEntry(t, buf)
		assert.Equal(t, "test-value1", entry["key1"])
		assert.Equal(t, "abc-123", entry["request_id"])
	})

	t.Run("unconfigured key is ignored", func(t *testing.T) {
		l, buf := newBufferedLogger([]string{"session_id"})
		ctx := WithValue(context.Background(), "request_id", "abc-123")

		l.Warn(ctx, "falling back", "mode", "degraded")

		entry := lastEntry(t, buf)
		assert.Equal(t, "degraded", entry["mode"])
		assert.NotContains(t, entry, "request_id")
	})

	t.Run("level", func(t *testing.T) {
		l, _ := newBufferedLogger(nil)
		assert.Equal(t, "debug", l.Level())
	})
}

func TestNewNoop(t *testing.T) {
	l := NewNoop()
	assert.NotPanics(t, func() {
		l.Info(context.Background(), "dropped", "key", "value")
		l.Error(context.Background(), "dropped")
	})
}

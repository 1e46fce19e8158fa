package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/synckit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates JSON logger", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		require.NotNil(t, log)
		log.Info("hello")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter option", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("includes static attributes", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("notify")))
		log.Info("msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "notify", entry["component"])
	})

	t.Run("extracts from context", func(t *testing.T) {
		t.Parallel()

		type key string
		ctxKey := key("run")

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("run_id", ctxKey),
		)
		ctx := context.WithValue(context.Background(), ctxKey, "42")
		log.InfoContext(ctx, "context msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "42", entry["run_id"])
	})

	t.Run("custom extractor skipped when value missing", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				return slog.Attr{}, false
			}),
		)
		log.InfoContext(context.Background(), "msg")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Len(t, entry, 3) // time, level, msg
	})
}

func TestWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies level and format", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithConfig(logger.Config{Level: "debug", Format: logger.FormatText}),
		)
		log.Debug("visible")
		assert.Contains(t, buf.String(), "level=DEBUG")
	})

	t.Run("empty config keeps defaults", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithConfig(logger.Config{}))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("invalid values panic", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			logger.New(logger.WithConfig(logger.Config{Level: "loud"}))
		})
		assert.Panics(t, func() {
			logger.New(logger.WithConfig(logger.Config{Format: "xml"}))
		})
	})
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	assert.NotPanics(t, func() { log.Error("nothing") })
}

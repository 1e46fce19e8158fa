package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/synckit/pkg/logger"
)

type testState string

func (s testState) String() string { return string(s) }

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("worker", slog.String("name", "poller"), slog.Int("n", 2))
	require.Equal(t, "worker", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "name", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestThreadAttrs(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value string
	}{
		{name: "thread name", attr: logger.ThreadName("poller"), key: "thread", value: "poller"},
		{name: "thread id", attr: logger.ThreadID(id), key: "thread_id", value: id.String()},
		{name: "state", attr: logger.State(testState("running")), key: "state", value: "running"},
		{name: "panic", attr: logger.Panic("boom"), key: "panic", value: "boom"},
		{name: "component", attr: logger.Component("notify"), key: "component", value: "notify"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.String())
		})
	}

	t.Run("nil values produce empty attrs", func(t *testing.T) {
		t.Parallel()

		assert.True(t, logger.ThreadID(nil).Equal(slog.Attr{}))
		assert.True(t, logger.State(nil).Equal(slog.Attr{}))
		assert.True(t, logger.Panic(nil).Equal(slog.Attr{}))
	})
}

func TestDuration(t *testing.T) {
	t.Parallel()

	attr := logger.Duration(2 * time.Second)
	assert.Equal(t, "duration", attr.Key)
	assert.Equal(t, 2*time.Second, attr.Value.Duration())
}

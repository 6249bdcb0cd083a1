package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development", ""} {
		l, err := New(env)
		require.NoError(t, err, env)
		assert.NotNil(t, l)
	}
}

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFrom(ctx))
	assert.Equal(t, "req-1", RequestIDFrom(WithRequestID(ctx, "req-1")))
}

func TestFromCtx(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	ctx := Into(context.Background(), zap.New(core))

	FromCtx(ctx).Info("without id")
	FromCtx(WithRequestID(ctx, "req-abc")).Info("with id")

	logs := observed.TakeAll()
	require.Len(t, logs, 2)
	_, ok := logs[0].ContextMap()["request_id"]
	assert.False(t, ok)
	assert.Equal(t, "req-abc", logs[1].ContextMap()["request_id"])
}

func TestFromCtxFallsBackToGlobal(t *testing.T) {
	assert.NotNil(t, FromCtx(context.Background()))
}

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

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"ERROR":   zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for input, expected := range cases {
		assert.Equal(t, expected, parseLevel(input), input)
	}
}

func TestNew(t *testing.T) {
	t.Run("console config", func(t *testing.T) {
		logger, err := New(DefaultConfig())

		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("json config", func(t *testing.T) {
		logger, err := New(ProductionConfig())

		require.NoError(t, err)
		assert.NotNil(t, logger)
	})
}

func TestNewForEnvironment(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		logger, err := NewForEnvironment(env)
		require.NoError(t, err, env)
		assert.NotNil(t, logger, env)
	}
}

func TestContextLogger(t *testing.T) {
	t.Run("FromContext falls back to a nop logger", func(t *testing.T) {
		logger := FromContext(context.Background())
		assert.NotNil(t, logger)
	})

	t.Run("WithContext round-trips the logger", func(t *testing.T) {
		core, _ := observer.New(zapcore.InfoLevel)
		logger := zap.New(core)

		ctx := WithContext(context.Background(), logger)

		assert.Same(t, logger, FromContext(ctx))
	})

	t.Run("WithRequestID enriches entries", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		logger := zap.New(core)

		ctx, enriched := WithRequestID(context.Background(), logger, "req-123")
		enriched.Info("hello")

		assert.Equal(t, "req-123", GetRequestID(ctx))
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])
	})

	t.Run("L picks up the request id from context", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		logger := zap.New(core)

		ctx := WithContext(context.Background(), logger)
		ctx = context.WithValue(ctx, RequestIDKey, "req-456")
		L(ctx).Info("hello")

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "req-456", logs.All()[0].ContextMap()["request_id"])
	})
}

package logx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Khighness/advent/internal/config"
)

// @Author KHighness
// @Update 2026-10-19

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		l, err := New(config.LogConfig{Level: "debug", Format: format})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	}

	l, err := New(config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))

	_, err = New(config.LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}

func TestElapsedCore(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(NewElapsedCore(obs))

	l.Info("solved", zap.Duration("elapsed", 1500*time.Millisecond), zap.Duration("other", time.Second))
	l.Debug("dropped")

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "1.5s", ctx["elapsed"])
	assert.Equal(t, time.Second, ctx["other"])
}

func TestElapsedCore_With(t *testing.T) {
	obs, logs := observer.New(zapcore.InfoLevel)
	l := zap.New(NewElapsedCore(obs)).With(zap.String("cmd", "solve"))

	l.Info("done", zap.Duration("elapsed", time.Minute))
	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "solve", ctx["cmd"])
	assert.Equal(t, "1m0s", ctx["elapsed"])
}

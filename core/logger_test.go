package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(&Config{Environment: "production"})
	require.NoError(t, err)
	assert.False(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger(&Config{Environment: "development"})
	require.NoError(t, err)
	assert.True(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestComponent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	Component(zap.New(core).Sugar(), "fetcher").Infow("Running statement sync...", "symbols", 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "fetcher", entries[0].LoggerName)
	assert.Equal(t, "fetcher", entries[0].ContextMap()["component"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["symbols"])
}

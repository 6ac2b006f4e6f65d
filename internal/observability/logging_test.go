package observability

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/battlecalc/internal/config"
)

func TestNewLogger_JSON(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "json"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewLogger_Console(t *testing.T) {
	cfg := config.LoggingConfig{Level: "debug", Format: "console"}
	logger, err := NewLogger(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	cfg := config.LoggingConfig{Level: "trace", Format: "json"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	cfg := config.LoggingConfig{Level: "info", Format: "xml"}
	_, err := NewLogger(cfg)
	assert.Error(t, err)
}

func TestNewLogger_AllLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		cfg := config.LoggingConfig{Level: level, Format: "json"}
		logger, err := NewLogger(cfg)
		require.NoError(t, err, "level %q should be valid", level)
		assert.NotNil(t, logger)
	}
}

func TestNewLogger_MinLevelRaisesOnly(t *testing.T) {
	logger, err := NewLogger(config.LoggingConfig{Level: "debug", Format: "json"}, WithMinLevel(zapcore.WarnLevel))
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	logger, err = NewLogger(config.LoggingConfig{Level: "error", Format: "json"}, WithMinLevel(zapcore.WarnLevel))
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.WarnLevel))
}

func TestNewLogger_OutputPathsAndFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battlecalc.log")
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json"},
		WithOutputPaths(path),
		WithField("listen", "127.0.0.1:50051"),
	)
	require.NoError(t, err)
	Component(logger, SubsystemRPC).Info("serving")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, ServiceName, entry["service"])
	assert.Equal(t, "127.0.0.1:50051", entry["listen"])
	assert.Equal(t, "rpc", entry["subsystem"])
	assert.Equal(t, "rpc", entry["logger"])
	assert.Equal(t, "serving", entry["msg"])
}

func TestComponent(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	Component(zap.New(core), SubsystemContent).Info("loaded")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "content", entry.LoggerName)
	assert.Equal(t, "content", entry.ContextMap()["subsystem"])

	assert.NotPanics(t, func() { Component(nil, SubsystemForecast).Info("dropped") })
}

package logging

import (
	"testing"

	"count/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LoggingConfig
		enabled zapcore.Level
		wantErr bool
	}{
		{"warn json", config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.WarnLevel, false},
		{"debug console", config.LoggingConfig{Level: "debug", Format: "console"}, zapcore.DebugLevel, false},
		{"empty format", config.LoggingConfig{Level: "info"}, zapcore.InfoLevel, false},
		{"bad level", config.LoggingConfig{Level: "shout", Format: "json"}, 0, true},
		{"bad format", config.LoggingConfig{Level: "info", Format: "xml"}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer func() { _ = logger.Sync() }()

			assert.True(t, logger.Core().Enabled(tt.enabled))
			if tt.enabled > zapcore.DebugLevel {
				assert.False(t, logger.Core().Enabled(tt.enabled-1))
			}
		})
	}
}

func TestFor(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	For(zap.New(core), CategoryDriver).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "driver", entries[0].LoggerName)
}

func TestWithRun(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	WithRun(base).Info("first")
	WithRun(base).Info("second")

	entries := logs.All()
	require.Len(t, entries, 2)

	first, ok := entries[0].ContextMap()["run_id"].(string)
	require.True(t, ok)
	second := entries[1].ContextMap()["run_id"].(string)

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

package logger

import (
	"testing"

	"quiz-mcq/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_DefaultsToNop(t *testing.T) {
	Set(nil)
	require.NotNil(t, Get())
	assert.NotPanics(t, func() { Get().Info("nothing happens") })
}

func TestInitialize_Levels(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	tests := []struct {
		cfg     config.LoggerConfig
		debugOn bool
		infoOn  bool
	}{
		{config.LoggerConfig{Level: "debug", Env: "development"}, true, true},
		{config.LoggerConfig{Level: "info", Env: "production"}, false, true},
		{config.LoggerConfig{Level: "warn", Env: "production"}, false, false},
		{config.LoggerConfig{Level: "nonsense", Env: "development"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.cfg.Level+"/"+tt.cfg.Env, func(t *testing.T) {
			require.NoError(t, Initialize(tt.cfg))
			assert.Equal(t, tt.debugOn, Get().Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.infoOn, Get().Core().Enabled(zapcore.InfoLevel))
		})
	}
}

func TestSet(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	core, logs := observer.New(zap.InfoLevel)
	Set(zap.New(core))

	Get().Info("captured", zap.String("topic", "history"))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "history", logs.All()[0].ContextMap()["topic"])
}

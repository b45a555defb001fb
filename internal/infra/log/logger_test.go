package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"passwarden/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		got, err := parseLogLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNew_PrettyAndJSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "warn"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))

	cfg.Env.Log.Pretty = true
	cfg.Env.Log.Level = "debug"
	logger, err = New(Params{Config: cfg})
	require.NoError(t, err)
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}

func TestNew_AddsServiceName(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.ServiceName = "passwarden"

	logger, err := New(Params{Config: cfg, Output: &buf})
	require.NoError(t, err)

	logger.Info("hello")
	assert.Contains(t, buf.String(), `"service":"passwarden"`)
}

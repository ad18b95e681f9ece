package logger_test

import (
	"log/slog"
	"testing"

	"github.com/onestep/osimport/pkg/config"
	"github.com/onestep/osimport/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, logger.ParseLevel(tt.input), tt.input)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	log := logger.New(&cfg.Log)
	require.NotNil(t, log)

	cfg.Log.Format = "json"
	cfg.Log.Destination = "stdout"
	log = logger.New(&cfg.Log)
	require.NotNil(t, log)
}

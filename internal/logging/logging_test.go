package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "empty defaults to info", input: "", want: zapcore.InfoLevel},
		{name: "debug", input: "debug", want: zapcore.DebugLevel},
		{name: "padded warn", input: "  warn ", want: zapcore.WarnLevel},
		{name: "error", input: "error", want: zapcore.ErrorLevel},
		{name: "bogus", input: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	_, err := New(Config{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported value")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewWith_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	logger, err := NewWith(Config{Level: "debug", Format: "json"}, func(c *zap.Config) {
		c.OutputPaths = []string{path}
	})
	require.NoError(t, err)

	logger.Debug("hello", zap.String("k", "v"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestNewWith_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")

	logger, err := NewWith(Config{Level: "warn"}, func(c *zap.Config) {
		c.OutputPaths = []string{path}
	})
	require.NoError(t, err)

	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "quiet")
	assert.Contains(t, string(data), "loud")
}

func TestTestObserved(t *testing.T) {
	logger, logs := TestObserved(t, zapcore.InfoLevel)

	logger.Debug("below threshold")
	logger.Info("recorded", zap.Int("n", 1))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "recorded", entry.Message)
	assert.Equal(t, int64(1), entry.ContextMap()["n"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("ignored")
	})
}

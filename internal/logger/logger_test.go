package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"bogus", zapcore.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), "parseLevel(%q)", tt.in)
	}
}

func TestNewWritesAtConfiguredLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")

	log, err := New(Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Debug("hidden")
	log.With(String("run_id", "r1")).Info("fetched", String("source", "city"), Int("matches", 3))
	log.Error("failed", Error(errors.New("boom")), Strings("keywords", []string{"data"}))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "fetched")
	assert.Contains(t, out, `"run_id": "r1"`)
	assert.Contains(t, out, `"matches": 3`)
	assert.Contains(t, out, "boom")
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing")
	assert.Same(t, log, log.With(String("k", "v")))
	assert.NoError(t, log.Sync())
}

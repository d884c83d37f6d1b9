package logger

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		option string
		want   slog.Leveler
		ok     bool
	}{
		{"", nil, true},
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"warn+2", slog.LevelWarn + 2, true},
		{"verbose", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			got, ok := level(tt.option)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(b)), "\n")
}

func TestNewJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, closer := New(&Options{Level: "warn", File: path, Format: "json"})
	logger.Info("dropped")
	logger.Warn("kept", "k", "v")
	require.NoError(t, closer())

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "v", rec["k"])
}

func TestNewFallbacks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	options := &Options{Level: "loud", File: path, Format: "xml"}
	logger, closer := New(options)
	require.NotNil(t, logger)
	require.NoError(t, closer())

	assert.Empty(t, options.Level)
	assert.Equal(t, "text", options.Format)
	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "could not parse logger format")
	assert.Contains(t, lines[1], "could not parse logger level")
}

func TestNewDevNull(t *testing.T) {
	logger, closer := New(&Options{File: os.DevNull})
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
	assert.NoError(t, closer())
}

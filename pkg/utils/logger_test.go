package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "gita.log")

	logger, err := NewLogger(path, "info", false)
	require.NoError(t, err)

	logger.Info("hello", zap.String("verse", "2-47"))
	logger.Debug("hidden")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"verse":"2-47"`)
	assert.NotContains(t, string(raw), "hidden")
}

func TestNewLoggerDebugFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gita.log")

	logger, err := NewLogger(path, "warn", true)
	require.NoError(t, err)

	logger.Debug("visible")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "visible"))
}

func TestNewLoggerInvalidLevel(t *testing.T) {
	_, err := NewLogger(filepath.Join(t.TempDir(), "gita.log"), "loud", false)
	assert.Error(t, err)
}

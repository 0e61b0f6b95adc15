package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/inarow/internal/model"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, model.DefaultRules(), cfg.Rules())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, ":8080", cfg.HTTP.Addr())
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INAROW_BOARD_SIZE", "3")
	t.Setenv("INAROW_WIN_LENGTH", "3")
	t.Setenv("INAROW_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, model.Rules{Size: 3, WinLength: 3}, cfg.Rules())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "log-level: warn\nboard:\n  size: 7\n  win-length: 4\nhttp:\n  port: 9090\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, model.Rules{Size: 7, WinLength: 4}, cfg.Rules())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

func TestLoadRejectsBoardSmallerThanWinLength(t *testing.T) {
	t.Setenv("INAROW_BOARD_SIZE", "4")
	t.Setenv("INAROW_WIN_LENGTH", "5")

	_, err := Load("")
	assert.ErrorIs(t, err, model.ErrConfig)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("INAROW_LOG_LEVEL", "loud")

	_, err := Load("")
	assert.ErrorIs(t, err, model.ErrConfig)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, model.ErrConfig)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "warn", LogFormat: "json"}

	logger := cfg.NewLogger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flyweight.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 5, cfg.Iterations)
	assert.Equal(t, 0.1, cfg.Step)
	assert.Equal(t, 37.61, cfg.Longitude)
	assert.Equal(t, 55.74, cfg.Latitude)
	assert.Equal(t, []string{"infantry", "transport", "equipment", "aircraft"}, cfg.Keys)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
iterations = 2
latitude = 48.85
keys = ["aircraft", "spaceship"]

[log]
level = "debug"
development = false
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Iterations)
	assert.Equal(t, 0.1, cfg.Step)
	assert.Equal(t, 37.61, cfg.Longitude)
	assert.Equal(t, 48.85, cfg.Latitude)
	assert.Equal(t, []string{"aircraft", "spaceship"}, cfg.Keys)
	assert.Equal(t, LogConfig{Level: "debug", Development: false}, cfg.Log)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `iterations = 0`))
	assert.ErrorContains(t, err, "iterations must be positive")

	cfg := DefaultConfig()
	cfg.Keys = nil
	assert.ErrorContains(t, cfg.Validate(), "keys must not be empty")

	_, err = LoadConfig(writeConfig(t, `iterations = "five"`))
	assert.ErrorContains(t, err, "parse config")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(LogConfig{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
	assert.True(t, logger.Core().Enabled(1))

	logger, err = newLogger(LogConfig{Level: "bogus", Development: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(0))
	assert.False(t, logger.Core().Enabled(-1))
}

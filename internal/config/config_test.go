package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200, cfg.Preview.Size)
	assert.Contains(t, cfg.Loader.AllowedTypes, "image/png")
}

func TestLoadFromFileKeepsDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, `{"preview": {"size": 256}, "log": {"level": "debug"}}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 256, cfg.Preview.Size)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, Default().Window, cfg.Window)
}

func TestLoadFromFileErrors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = LoadFromFile(writeConfig(t, `{"preview":`))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"window", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"preview", func(c *Config) { c.Preview.Size = 0 }, "preview.size"},
		{"types", func(c *Config) { c.Loader.AllowedTypes = nil }, "allowed_types"},
		{"level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"encoding", func(c *Config) { c.Log.Encoding = "xml" }, "log.encoding"},
		{"lines", func(c *Config) { c.Log.MaxLines = 0 }, "log.max_lines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}

func TestLoadAppliesEnvironment(t *testing.T) {
	path := writeConfig(t, `{"log": {"encoding": "json"}}`)
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvPreviewSize, "120")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Encoding)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 120, cfg.Preview.Size)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvPreviewSize, "big")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Preview.Size)
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLogLevel, "loud")

	_, err := Load()
	assert.Error(t, err)
}

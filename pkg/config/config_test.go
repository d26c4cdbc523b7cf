package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marbeck-dev/appdeck/pkg/errors"
	"github.com/marbeck-dev/appdeck/pkg/fsutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.Equal(t, "text", cfg.Settings.OutputFormat)
	assert.Equal(t, 30*time.Second, cfg.Settings.HTTPTimeout)
	assert.Equal(t, 4, cfg.Settings.MaxConcurrent)
	assert.NotEmpty(t, cfg.Settings.CacheDir)
	assert.NotEmpty(t, cfg.Settings.InstallDir)
}

func TestLoadConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `settings:
  catalog_url: https://example.com/catalog.json
  cache_dir: /var/cache/appdeck
  log_level: debug
  max_concurrent_downloads: 8`

	err := os.WriteFile(configPath, []byte(configContent), fsutil.FileModeDefault)
	require.NoError(t, err)

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/catalog.json", cfg.Settings.CatalogURL)
	assert.Equal(t, "/var/cache/appdeck", cfg.Settings.CacheDir)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, 8, cfg.Settings.MaxConcurrent)

	// Unset values fall back to defaults
	assert.Equal(t, DefaultHTTPTimeout, cfg.Settings.HTTPTimeout)
	assert.Equal(t, "text", cfg.Settings.OutputFormat)
}

func TestLoadConfig_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Settings.LogLevel, cfg.Settings.LogLevel)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.ErrorIs(t, err, errors.ErrEmptyConfigPath)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("settings: [not a map"), 0o644))

	_, err := LoadConfig(configPath)
	require.ErrorIs(t, err, errors.ErrConfigParse)
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "bad output format",
			content: `settings:
  output_format: xml`,
		},
		{
			name: "bad log level",
			content: `settings:
  log_level: verbose`,
		},
		{
			name: "negative max concurrent",
			content: `settings:
  max_concurrent_downloads: -2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(configPath, []byte(tt.content), 0o644))

			_, err := LoadConfig(configPath)
			require.ErrorIs(t, err, errors.ErrConfigValidation)
		})
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.CatalogURL = "https://example.com/catalog.json"
	cfg.Settings.LogLevel = "warn"

	require.NoError(t, cfg.SaveConfig(configPath))
	assert.FileExists(t, configPath)

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Settings.CatalogURL, loaded.Settings.CatalogURL)
	assert.Equal(t, "warn", loaded.Settings.LogLevel)
}

func TestPathHelpers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.CacheDir = "/cache"
	cfg.Settings.StateDir = "/state"

	assert.Equal(t, filepath.Join("/cache", "artifacts"), cfg.GetArtifactCacheDir())
	assert.Equal(t, filepath.Join("/cache", "catalogs"), cfg.GetCatalogCacheDir())
	assert.Equal(t, filepath.Join("/state", "installed.json"), cfg.GetStateDBPath())
	assert.Equal(t, filepath.Join("/cache", "catalogs", "catalog.json"), cfg.GetCatalogPath())

	cfg.Settings.CatalogPath = "/etc/appdeck/catalog.json"
	assert.Equal(t, "/etc/appdeck/catalog.json", cfg.GetCatalogPath())
}

func TestSetAndGetValue(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.SetValue("catalog_url", "https://example.com/c.json"))
	require.NoError(t, cfg.SetValue("http_timeout", "45s"))
	require.NoError(t, cfg.SetValue("max_concurrent_downloads", "6"))

	v, err := cfg.GetValue("catalog_url")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/c.json", v)

	assert.Equal(t, 45*time.Second, cfg.Settings.HTTPTimeout)
	assert.Equal(t, 6, cfg.Settings.MaxConcurrent)

	require.Error(t, cfg.SetValue("http_timeout", "not-a-duration"))
	require.Error(t, cfg.SetValue("nonexistent_key", "x"))
	_, err = cfg.GetValue("nonexistent_key")
	require.Error(t, err)
}

func TestToMap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Settings.CatalogURL = "https://example.com/c.json"

	m := cfg.ToMap()
	assert.Equal(t, "https://example.com/c.json", m["catalog_url"])
	assert.Equal(t, "30s", m["http_timeout"])
	assert.Equal(t, "4", m["max_concurrent_downloads"])
	assert.Equal(t, "info", m["log_level"])
}

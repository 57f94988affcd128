package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.ConfirmDelete)
	assert.Equal(t, "v1", cfg.CacheVersion)
	assert.Equal(t, DefaultManifest, cfg.Manifest)
}

func TestLoadFrom_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
confirm_delete: false
log_level: DEBUG
cache_version: v7
upstream_url: http://example.com
manifest:
  - /
  - /app.js
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.False(t, cfg.ConfirmDelete)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "v7", cfg.CacheVersion)
	assert.Equal(t, "http://example.com", cfg.UpstreamURL)
	assert.Equal(t, []string{"/", "/app.js"}, cfg.Manifest)
}

func TestLoadFrom_RejectsPathyVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache_version: ../evil\n"), 0644))

	_, err := LoadFrom(path)
	require.Error(t, err)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.CacheVersion = "v9"
	cfg.ConfirmDelete = false
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "v9", loaded.CacheVersion)
	assert.False(t, loaded.ConfirmDelete)
}

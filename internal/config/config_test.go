package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := New()

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "tiles", cfg.Output)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TG_MOSAIC_LOG_LEVEL", "debug")
	t.Setenv("TG_MOSAIC_OUTPUT", "/tmp/mosaic")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/mosaic", cfg.Output)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosaic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-format: json\noutput: sliced\n"), 0o644))

	v := New()
	used, err := ReadFile(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "sliced", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestReadFile_MissingExplicitFile(t *testing.T) {
	_, err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestReadFile_NoDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	used, err := ReadFile(New(), "")
	require.NoError(t, err)
	assert.Empty(t, used)
}

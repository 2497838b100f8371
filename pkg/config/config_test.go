package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.BaseDir)
	assert.False(t, cfg.StrictOverflow)
	assert.Equal(t, "127.0.0.1", cfg.Bind)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.BaseDir = "/opt/hydrobuddy"
	cfg.StrictOverflow = true
	cfg.Logging.Level = "debug"

	require.NoError(t, SaveConfig(cfg, path))
	assert.True(t, ConfigExists(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_dir: /apps/hb\n"), 0600))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/apps/hb", loaded.BaseDir)
	assert.Equal(t, 8080, loaded.Port, "unset keys fall back to defaults")
	assert.Equal(t, "info", loaded.Logging.Level)
}

func TestResolveDatabasePath(t *testing.T) {
	t.Run("unix layout preferred", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, UnixDatabaseName), []byte{0x03}, 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, WindowsDatabaseName), []byte{0x03}, 0644))

		path, err := ResolveDatabasePath(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, UnixDatabaseName), path)
	})

	t.Run("windows fallback", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, WindowsDatabaseName), []byte{0x03}, 0644))

		path, err := ResolveDatabasePath(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, WindowsDatabaseName), path)
	})

	t.Run("no database", func(t *testing.T) {
		_, err := ResolveDatabasePath(t.TempDir())
		assert.Error(t, err)
	})

	t.Run("missing base dir", func(t *testing.T) {
		_, err := ResolveDatabasePath(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})
}

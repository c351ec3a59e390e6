package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/create-fs-app/cli/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	clearEnv(t)

	t.Run("loads config from file", func(t *testing.T) {
		configFile := writeConfig(t, `
cacheDir: /custom/cache
presetsDir: /custom/presets
cache:
  enabled: false
git:
  backend: exec
log:
  timestamps: false
`)
		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/custom/cache", cfg.CacheDir)
		assert.Equal(t, "/custom/presets", cfg.PresetsDir)
		require.NotNil(t, cfg.Cache.Enabled)
		assert.False(t, *cfg.Cache.Enabled)
		assert.Equal(t, "exec", cfg.Git.Backend)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Empty(t, cfg.CacheDir)
		assert.Nil(t, cfg.Cache.Enabled)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv(EnvCacheDir, "/env/cache")
		t.Setenv("CFA_GIT_BACKEND", "exec")
		t.Setenv("CFA_CACHE_ENABLED", "false")

		cfg, err := NewLoader().Load(writeConfig(t, ""))

		require.NoError(t, err)
		assert.Equal(t, "/env/cache", cfg.CacheDir)
		assert.Equal(t, "exec", cfg.Git.Backend)
		require.NotNil(t, cfg.Cache.Enabled)
		assert.False(t, *cfg.Cache.Enabled)
	})

	t.Run("env vars override file values", func(t *testing.T) {
		t.Setenv(EnvPresetsDir, "/env/presets")

		cfg, err := NewLoader().Load(writeConfig(t, "presetsDir: /file/presets\n"))

		require.NoError(t, err)
		assert.Equal(t, "/env/presets", cfg.PresetsDir)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		_, err := NewLoader().Load(writeConfig(t, "cacheDir: [unclosed\n"))
		assert.Error(t, err)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := NewLoader().LoadWithDefaults(writeConfig(t, "cacheDir: /mine\n"))
	require.NoError(t, err)
	assert.Equal(t, "/mine", cfg.CacheDir)
	assert.Equal(t, DefaultConfig().PresetsDir, cfg.PresetsDir)
	assert.Equal(t, DefaultGitBackend, cfg.Git.Backend)
	require.NotNil(t, cfg.Cache.Enabled)
	assert.True(t, *cfg.Cache.Enabled)

	_, err = NewLoader().LoadWithDefaults(writeConfig(t, "git:\n  backend: svn\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "git.backend")
}

func TestConfigFileExists(t *testing.T) {
	path := writeConfig(t, "")
	ok, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ConfigFileExists(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWriteDefault(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# create-fs-app configuration")
	assert.Contains(t, string(data), "cacheDir: ~/.create-fs-app/cache")
	assert.Contains(t, string(data), "backend: go-git")

	// The written file loads back to the defaults.
	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	err = WriteDefault(path, false)
	assert.ErrorIs(t, err, oerrors.ErrAlreadyExists)
	assert.NoError(t, WriteDefault(path, true))
}

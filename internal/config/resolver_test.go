package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceOf(r *Resolved, key string) ConfigSource {
	for _, v := range r.Values {
		if v.Key == key {
			return v.Source
		}
	}
	return ""
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfig, "")
	for _, b := range envBindings {
		t.Setenv(b.env, "")
	}
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	r, err := Resolve(ResolveOptions{})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".create-fs-app", "config.yaml"), r.ConfigFile)
	assert.Equal(t, filepath.Join(home, ".create-fs-app", "cache"), r.CacheDir)
	assert.Equal(t, filepath.Join(home, ".create-fs-app", "presets"), r.PresetsDir)
	assert.True(t, r.CacheEnabled)
	assert.True(t, r.Timestamps)
	assert.Equal(t, DefaultGitBackend, r.GitBackend)
	assert.Equal(t, SourceDefault, sourceOf(r, "cacheDir"))
	assert.Equal(t, SourceDefault, sourceOf(r, "config"))
}

func TestResolve_Precedence(t *testing.T) {
	clearEnv(t)
	configFile := writeConfig(t, `
cacheDir: /file/cache
git:
  backend: exec
log:
  timestamps: false
`)
	t.Setenv(EnvCacheDir, "/env/cache")

	r, err := Resolve(ResolveOptions{ConfigFlag: configFile})
	require.NoError(t, err)
	assert.Equal(t, configFile, r.ConfigFile)
	assert.Equal(t, SourceFlag, sourceOf(r, "config"))

	assert.Equal(t, "/env/cache", r.CacheDir)
	assert.Equal(t, SourceEnv, sourceOf(r, "cacheDir"))

	assert.Equal(t, "exec", r.GitBackend)
	assert.Equal(t, SourceConfig, sourceOf(r, "git.backend"))

	assert.False(t, r.Timestamps)
	assert.Equal(t, SourceConfig, sourceOf(r, "log.timestamps"))

	on := true
	r, err = Resolve(ResolveOptions{ConfigFlag: configFile, Timestamps: &on, GitBackend: "go-git", NoCache: true})
	require.NoError(t, err)
	assert.True(t, r.Timestamps)
	assert.Equal(t, "go-git", r.GitBackend)
	assert.False(t, r.CacheEnabled)
	assert.Equal(t, SourceFlag, sourceOf(r, "cache.enabled"))
}

func TestResolve_ConfigFromEnv(t *testing.T) {
	clearEnv(t)
	configFile := writeConfig(t, "presetsDir: /file/presets\n")
	t.Setenv(EnvConfig, configFile)

	r, err := Resolve(ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, configFile, r.ConfigFile)
	assert.Equal(t, SourceEnv, sourceOf(r, "config"))
	assert.Equal(t, "/file/presets", r.PresetsDir)
}

func TestResolve_InvalidBackend(t *testing.T) {
	clearEnv(t)
	_, err := Resolve(ResolveOptions{ConfigFlag: writeConfig(t, ""), GitBackend: "svn"})
	assert.Error(t, err)
}

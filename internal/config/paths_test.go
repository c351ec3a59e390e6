package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := map[string]string{
		"":                            "",
		"/srv/cfa/cache":              "/srv/cfa/cache",
		"presets":                     "presets",
		"~":                           "/home/tester",
		"~/.create-fs-app/cache":      "/home/tester/.create-fs-app/cache",
		"~/":                          "/home/tester",
		"~builder/.create-fs-app":     "~builder/.create-fs-app",
		"/opt/~/create-fs-app/config": "/opt/~/create-fs-app/config",
	}

	for in, want := range tests {
		got, err := ExpandPath(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestAppHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	dir, err := AppHome()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", AppDir), dir)
}

func TestGetConfigFile(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv(EnvConfig, "")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.create-fs-app/config.yaml", path)

	t.Setenv(EnvConfig, "/etc/cfa.yaml")
	path, err = GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/etc/cfa.yaml", path)
}

func TestDefaultConfigUsesAppDir(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "~/"+AppDir+"/cache", cfg.CacheDir)
	assert.Equal(t, "~/"+AppDir+"/presets", cfg.PresetsDir)
}

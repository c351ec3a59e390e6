package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AppDir is the per-user directory, relative to $HOME, that holds the
// config file, the template cache and saved presets.
const AppDir = ".create-fs-app"

// Environment variables read by the loader and resolver.
const (
	EnvConfig        = "CFA_CONFIG"
	EnvCacheDir      = "CFA_CACHE_DIR"
	EnvPresetsDir    = "CFA_PRESETS_DIR"
	EnvCacheEnabled  = "CFA_CACHE_ENABLED"
	EnvGitBackend    = "CFA_GIT_BACKEND"
	EnvLogTimestamps = "CFA_LOG_TIMESTAMPS"
)

// AppHome returns the absolute path of AppDir for the current user.
func AppHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, AppDir), nil
}

// GetConfigFile returns $CFA_CONFIG, or config.yaml inside AppHome.
func GetConfigFile() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := AppHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// ExpandPath replaces a leading "~" or "~/" with the user's home directory.
// Other forms, including "~user", are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") &&
		!strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

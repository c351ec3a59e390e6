package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that override
// them. Nested keys are listed because AutomaticEnv alone does not surface
// them through Unmarshal.
var envBindings = []struct {
	key string
	env string
}{
	{"cacheDir", EnvCacheDir},
	{"presetsDir", EnvPresetsDir},
	{"cache.enabled", EnvCacheEnabled},
	{"git.backend", EnvGitBackend},
	{"log.timestamps", EnvLogTimestamps},
}

// Loader reads the YAML config file and overlays CFA_* environment
// variables.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader bound to the CFA_* environment.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("CFA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, b := range envBindings {
		_ = v.BindEnv(b.key, b.env)
	}
	return &Loader{v: v}
}

// Load reads configFile, or the default config file when empty. A missing
// file yields an empty Config with only environment overrides applied.
func (l *Loader) Load(configFile string) (*Config, error) {
	path, err := configPath(configFile)
	if err != nil {
		return nil, err
	}

	l.v.SetConfigFile(path)
	l.v.SetConfigType("yaml")
	if err := l.v.ReadInConfig(); err != nil && !isMissing(err) {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}
	if l.v.IsSet("cache.enabled") {
		cfg.Cache.Enabled = boolPtr(l.v.GetBool("cache.enabled"))
	}
	if l.v.IsSet("log.timestamps") {
		cfg.Log.Timestamps = boolPtr(l.v.GetBool("log.timestamps"))
	}
	if b := l.v.GetString("git.backend"); b != "" {
		cfg.Git.Backend = b
	}
	return &cfg, nil
}

// LoadWithDefaults loads, fills defaults and validates.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigFileExists reports whether the config file (default when empty)
// is present.
func ConfigFileExists(configFile string) (bool, error) {
	path, err := configPath(configFile)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func configPath(configFile string) (string, error) {
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return "", err
		}
	}
	return ExpandPath(configFile)
}

func isMissing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

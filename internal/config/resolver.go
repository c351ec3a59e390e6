package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/create-fs-app/cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records how one configuration key was resolved.
type ResolvedValue struct {
	Key    string       `json:"key" yaml:"key"`
	Value  string       `json:"value" yaml:"value"`
	Source ConfigSource `json:"source" yaml:"source"`
}

// ResolveOptions carries the command-line overrides.
type ResolveOptions struct {
	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string

	// NoCache is --no-cache.
	NoCache bool

	// Timestamps is --timestamps when it was given explicitly.
	Timestamps *bool

	// GitBackend is --git-backend (empty if not set).
	GitBackend string
}

// Resolved is the effective configuration for one invocation. Paths are
// expanded.
type Resolved struct {
	ConfigFile   string
	CacheDir     string
	PresetsDir   string
	CacheEnabled bool
	GitBackend   string
	Timestamps   bool

	Values []ResolvedValue
}

// Resolve applies flag > env > config file > default precedence.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	configFile, configSource, err := resolveConfigPath(opts.ConfigFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := NewLoader().Load(configFile)
	if err != nil {
		return nil, err
	}
	def := DefaultConfig()
	r := &Resolved{ConfigFile: configFile}
	r.record("config", configFile, configSource)

	dir, src := pick("", EnvCacheDir, cfg.CacheDir, def.CacheDir)
	if r.CacheDir, err = ExpandPath(dir); err != nil {
		return nil, fmt.Errorf("expanding cache directory: %w", err)
	}
	r.record("cacheDir", r.CacheDir, src)

	dir, src = pick("", EnvPresetsDir, cfg.PresetsDir, def.PresetsDir)
	if r.PresetsDir, err = ExpandPath(dir); err != nil {
		return nil, fmt.Errorf("expanding presets directory: %w", err)
	}
	r.record("presetsDir", r.PresetsDir, src)

	r.GitBackend, src = pick(opts.GitBackend, EnvGitBackend, cfg.Git.Backend, def.Git.Backend)
	r.record("git.backend", r.GitBackend, src)

	enabled, src := pickBool(nil, EnvCacheEnabled, cfg.Cache.Enabled, *def.Cache.Enabled)
	if opts.NoCache {
		enabled, src = false, SourceFlag
	}
	r.CacheEnabled = enabled
	r.record("cache.enabled", strconv.FormatBool(enabled), src)

	r.Timestamps, src = pickBool(opts.Timestamps, EnvLogTimestamps, cfg.Log.Timestamps, *def.Log.Timestamps)
	r.record("log.timestamps", strconv.FormatBool(r.Timestamps), src)

	resolvedCfg := &Config{
		CacheDir:   r.CacheDir,
		PresetsDir: r.PresetsDir,
		Git:        GitConfig{Backend: r.GitBackend},
	}
	if err := Validate(resolvedCfg); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Resolved) record(key, value string, source ConfigSource) {
	r.Values = append(r.Values, ResolvedValue{Key: key, Value: value, Source: source})
}

// resolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CFA_CONFIG env, (3) ~/.create-fs-app/config.yaml.
func resolveConfigPath(flag string) (string, ConfigSource, error) {
	if flag != "" {
		return flag, SourceFlag, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, SourceEnv, nil
	}
	path, err := GetConfigFile()
	if err != nil {
		return "", "", err
	}
	return path, SourceDefault, nil
}

// pick chooses between a flag, an environment variable, the loaded config
// value and a default. The loaded value already includes the environment, so
// the environment only decides the reported source.
func pick(flag, env, loaded, def string) (string, ConfigSource) {
	switch {
	case flag != "":
		return flag, SourceFlag
	case loaded != "" && os.Getenv(env) != "":
		return loaded, SourceEnv
	case loaded != "":
		return loaded, SourceConfig
	default:
		return def, SourceDefault
	}
}

func pickBool(flag *bool, env string, loaded *bool, def bool) (bool, ConfigSource) {
	switch {
	case flag != nil:
		return *flag, SourceFlag
	case loaded != nil && os.Getenv(env) != "":
		return *loaded, SourceEnv
	case loaded != nil:
		return *loaded, SourceConfig
	default:
		return def, SourceDefault
	}
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
	}
}

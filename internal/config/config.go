// Package config provides configuration loading and management.
package config

// CacheConfig contains template cache settings.
type CacheConfig struct {
	// Enabled turns cache reads and writes on or off.
	// Env: CFA_CACHE_ENABLED, Default: true. --no-cache disables it for one run.
	Enabled *bool `json:"enabled,omitempty" yaml:"enabled,omitempty" mapstructure:"enabled"`
}

// GitConfig contains version-control settings.
type GitConfig struct {
	// Backend selects the git implementation: "go-git" (default) or "exec".
	// Env: CFA_GIT_BACKEND
	Backend string `json:"backend,omitempty" yaml:"backend,omitempty" mapstructure:"backend"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty" mapstructure:"timestamps"`
}

// Config represents the create-fs-app configuration, loaded from
// ~/.create-fs-app/config.yaml.
type Config struct {
	// CacheDir holds cached templates.
	// Env: CFA_CACHE_DIR, Default: ~/.create-fs-app/cache
	CacheDir string `json:"cacheDir,omitempty" yaml:"cacheDir,omitempty" mapstructure:"cacheDir"`

	// PresetsDir holds presets.json.
	// Env: CFA_PRESETS_DIR, Default: ~/.create-fs-app/presets
	PresetsDir string `json:"presetsDir,omitempty" yaml:"presetsDir,omitempty" mapstructure:"presetsDir"`

	Cache CacheConfig `json:"cache,omitempty" yaml:"cache,omitempty" mapstructure:"cache"`
	Git   GitConfig   `json:"git,omitempty" yaml:"git,omitempty" mapstructure:"git"`
	Log   LogConfig   `json:"log,omitempty" yaml:"log,omitempty" mapstructure:"log"`
}

// DefaultGitBackend is used when no backend is configured.
const DefaultGitBackend = "go-git"

// DefaultConfig returns a Config with all default values populated.
// Used by `create-fs-app config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		CacheDir:   "~/" + AppDir + "/cache",
		PresetsDir: "~/" + AppDir + "/presets",
		Cache:      CacheConfig{Enabled: boolPtr(true)},
		Git:        GitConfig{Backend: DefaultGitBackend},
		Log:        LogConfig{Timestamps: boolPtr(true)},
	}
}

// WithDefaults returns a copy of c with unset fields filled from
// DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.CacheDir == "" {
		out.CacheDir = def.CacheDir
	}
	if out.PresetsDir == "" {
		out.PresetsDir = def.PresetsDir
	}
	if out.Cache.Enabled == nil {
		out.Cache.Enabled = def.Cache.Enabled
	}
	if out.Git.Backend == "" {
		out.Git.Backend = def.Git.Backend
	}
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	return &out
}

func boolPtr(b bool) *bool {
	return &b
}

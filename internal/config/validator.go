package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	oerrors "github.com/create-fs-app/cli/internal/errors"
)

// GitBackends lists the accepted git.backend values.
var GitBackends = []string{"go-git", "exec"}

// Validate checks the values a config file can carry. Every problem is
// reported as a validation DetailError; several are joined together.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Git.Backend != "" && !slices.Contains(GitBackends, cfg.Git.Backend) {
		errs = append(errs, oerrors.NewValidationError(
			fmt.Sprintf("unknown git backend %q", cfg.Git.Backend),
			"git.backend",
			"Valid options: "+strings.Join(GitBackends, ", "),
		))
	}

	// Clearing the cache removes its whole directory, so presets must live
	// elsewhere.
	if cfg.CacheDir != "" && cfg.PresetsDir != "" &&
		filepath.Clean(cfg.CacheDir) == filepath.Clean(cfg.PresetsDir) {
		errs = append(errs, oerrors.NewValidationError(
			fmt.Sprintf("cacheDir and presetsDir both point to %s", cfg.CacheDir),
			"presetsDir",
			"Use separate directories for cached templates and saved presets.",
		))
	}

	return errors.Join(errs...)
}

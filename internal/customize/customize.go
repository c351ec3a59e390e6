// Package customize rewrites a freshly retrieved template tree for one
// project: manifest names, placeholder tokens, README heading, optional
// feature files and the backend environment template.
//
// Every step treats a missing file as nothing to do. Only unexpected I/O
// errors are returned.
package customize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/project"
)

// Customize runs every step in order against dir.
func Customize(dir string, cfg project.ProjectConfig) error {
	steps := []struct {
		name string
		run  func(string, project.ProjectConfig) error
	}{
		{"rewriting manifests", RewriteManifests},
		{"replacing placeholders", func(d string, c project.ProjectConfig) error {
			_, err := ReplacePlaceholders(d, c)
			return err
		}},
		{"updating README", AugmentReadme},
		{"pruning optional features", PruneOptionalFeatures},
		{"updating environment template", RewriteEnvTemplate},
	}

	for _, step := range steps {
		output.Debug(step.name, "dir", dir)
		if err := step.run(dir, cfg); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	return nil
}

// readOptional reads path. A missing file returns (nil, false, nil).
func readOptional(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// writePreservingMode replaces the content of an existing file.
func writePreservingMode(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, data, mode)
}

package customize

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/project"
)

// DockerFiles are removed when the backend does not use Docker.
var DockerFiles = []string{
	"Dockerfile",
	"docker-compose.yml",
	".dockerignore",
	"apps/backend/Dockerfile",
	"apps/frontend/Dockerfile",
}

// LintFiles are removed when frontend linting is disabled.
var LintFiles = []string{
	".eslintrc.json",
	".prettierrc",
	"apps/frontend/.eslintrc.json",
}

// PruneOptionalFeatures deletes the files of features cfg leaves out.
func PruneOptionalFeatures(dir string, cfg project.ProjectConfig) error {
	if !cfg.Apps.Backend.Docker {
		if err := removeAll(dir, DockerFiles); err != nil {
			return err
		}
	}
	if !cfg.Apps.Frontend.Linting {
		if err := removeAll(dir, LintFiles); err != nil {
			return err
		}
	}
	return nil
}

func removeAll(dir string, files []string) error {
	for _, f := range files {
		err := os.Remove(filepath.Join(dir, filepath.FromSlash(f)))
		switch {
		case err == nil:
			output.Debug("removed", "file", f)
		case errors.Is(err, fs.ErrNotExist):
		default:
			return err
		}
	}
	return nil
}

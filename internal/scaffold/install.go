package scaffold

import (
	"context"
	"fmt"

	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/process"
	"github.com/create-fs-app/cli/internal/project"
)

// InstallCommand is the dependency install invocation for pm in dir. Output
// is streamed to the user.
func InstallCommand(pm project.PackageManager, dir string) process.Command {
	return process.Command{
		Name:    string(pm),
		Args:    []string{"install"},
		Dir:     dir,
		Inherit: true,
	}
}

// Installer installs project dependencies.
type Installer struct {
	runner process.Runner
}

// NewInstaller returns an installer that runs commands through runner.
func NewInstaller(runner process.Runner) *Installer {
	return &Installer{runner: runner}
}

// Install runs the package manager's install command in dir.
func (i *Installer) Install(ctx context.Context, dir string, pm project.PackageManager) error {
	if _, err := i.runner.Run(ctx, InstallCommand(pm, dir)); err != nil {
		return &InstallError{PackageManager: pm, Err: err}
	}
	return nil
}

// InstallError reports a failed dependency install. The project directory
// exists but is not fully set up.
type InstallError struct {
	PackageManager project.PackageManager
	Err            error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("failed to install dependencies: %v", e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Is classifies the error as oerrors.ErrInstall.
func (e *InstallError) Is(target error) bool {
	return target == oerrors.ErrInstall
}

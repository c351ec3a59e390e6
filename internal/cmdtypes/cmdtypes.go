// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/cache, internal/cmd/config, internal/cmd/preset).
package cmdtypes

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/create-fs-app/cli/internal/cache"
	"github.com/create-fs-app/cli/internal/config"
	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/preset"
	"github.com/create-fs-app/cli/internal/process"
	"github.com/create-fs-app/cli/internal/templates"
	"github.com/create-fs-app/cli/internal/vcs"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Resolved   *config.Resolved
	ConfigFlag string // raw --config flag value (needed by config init)
	Verbose    bool
	Env        *Env
}

// Env holds the collaborators commands build their work from.
type Env struct {
	Registry *templates.Registry
	Runner   process.Runner

	// NewGit returns the version-control client for a backend.
	NewGit func(backend vcs.Backend, runner process.Runner) (vcs.Client, error)

	// WorkDir returns the parent directory of generated projects.
	WorkDir func() (string, error)

	// In feeds the interactive prompt.
	In io.Reader

	// Interactive reports whether questions may be asked.
	Interactive func() bool
}

// DefaultEnv returns the production collaborators.
func DefaultEnv() *Env {
	return &Env{
		Registry: templates.Default(),
		Runner:   process.NewExecRunner(),
		NewGit:   vcs.New,
		WorkDir:  os.Getwd,
		In:       os.Stdin,
		Interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && output.IsTTY()
		},
	}
}

// Git returns the client for the resolved git backend.
func (g *GlobalConfig) Git() (vcs.Client, error) {
	client, err := g.Env.NewGit(vcs.Backend(g.Resolved.GitBackend), g.Env.Runner)
	if err != nil {
		return nil, oerrors.Wrap(oerrors.ErrValidation, err.Error())
	}
	return client, nil
}

// Cache returns the template cache, or nil when caching is disabled for
// this run.
func (g *GlobalConfig) Cache(cloner vcs.Cloner) *cache.Cache {
	if !g.Resolved.CacheEnabled {
		return nil
	}
	return cache.New(g.Resolved.CacheDir, cloner)
}

// Presets returns the preset store.
func (g *GlobalConfig) Presets() *preset.Store {
	return preset.NewStore(g.Resolved.PresetsDir)
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// Fail wraps err in an ExitError whose code follows the error's
// classification.
func Fail(err error) error {
	return &ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}

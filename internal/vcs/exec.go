package vcs

import (
	"context"
	"fmt"

	"github.com/create-fs-app/cli/internal/process"
)

// Exec implements Client by running the git binary.
type Exec struct {
	runner process.Runner
}

// NewExec returns a client that runs git through runner.
func NewExec(runner process.Runner) *Exec {
	return &Exec{runner: runner}
}

// Clone runs git clone.
func (e *Exec) Clone(ctx context.Context, dir string, opts CloneOptions) error {
	if _, err := e.git(ctx, "", cloneArgs(dir, opts)...); err != nil {
		return fmt.Errorf("cloning %s: %w", opts.URL, err)
	}
	return nil
}

// InitialCommit runs git init, add and commit inside dir.
func (e *Exec) InitialCommit(ctx context.Context, dir, message string) error {
	steps := [][]string{
		{"init"},
		{"add", "-A"},
		{"commit", "--allow-empty", "-m", message},
	}
	for _, args := range steps {
		if _, err := e.git(ctx, dir, args...); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exec) git(ctx context.Context, dir string, args ...string) (string, error) {
	return e.runner.Run(ctx, process.Command{Name: "git", Args: args, Dir: dir})
}

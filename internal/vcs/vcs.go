// Package vcs wraps the version-control operations the scaffold pipeline
// needs: shallow clones of template repositories and the initial commit of
// a generated project. Two backends exist: an in-process go-git backend and
// one that shells out to the git binary.
package vcs

import (
	"context"
	"fmt"
	"strconv"

	"github.com/create-fs-app/cli/internal/process"
)

// Backend names a Client implementation.
type Backend string

const (
	BackendGoGit Backend = "go-git"
	BackendExec  Backend = "exec"
)

// Backends lists the supported backends.
func Backends() []Backend { return []Backend{BackendGoGit, BackendExec} }

// MetadataDir is the version-control metadata directory inside a work tree.
const MetadataDir = ".git"

// CloneOptions controls a clone.
type CloneOptions struct {
	URL string

	// Branch to check out. Empty means the remote HEAD.
	Branch string

	// Depth limits history. Zero means full history.
	Depth int

	SingleBranch bool
}

// Cloner fetches a remote repository into dir.
type Cloner interface {
	Clone(ctx context.Context, dir string, opts CloneOptions) error
}

// Initializer turns dir into a repository holding one commit of its
// current contents.
type Initializer interface {
	InitialCommit(ctx context.Context, dir, message string) error
}

// Client combines both operations.
type Client interface {
	Cloner
	Initializer
}

// New returns the client for backend. The runner is used only by the exec
// backend.
func New(backend Backend, runner process.Runner) (Client, error) {
	switch backend {
	case BackendGoGit, "":
		return NewGoGit(), nil
	case BackendExec:
		return NewExec(runner), nil
	default:
		return nil, fmt.Errorf("unknown git backend %q", backend)
	}
}

// InitialCommitMessage is the message of a generated project's first commit.
func InitialCommitMessage(projectName string) string {
	return "Initial commit: " + projectName
}

func cloneArgs(dir string, opts CloneOptions) []string {
	args := []string{"clone"}
	if opts.Depth > 0 {
		args = append(args, "--depth", strconv.Itoa(opts.Depth))
	}
	if opts.Branch != "" {
		args = append(args, "--branch", opts.Branch)
	}
	if opts.SingleBranch {
		args = append(args, "--single-branch")
	}
	return append(args, "--", opts.URL, dir)
}

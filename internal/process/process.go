// Package process runs external programs (git, package managers) on behalf
// of the scaffold pipeline. Only the exit status is interpreted.
package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes one program invocation.
type Command struct {
	// Name is the program to run, resolved through PATH.
	Name string
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string

	// Inherit streams the child's output to the runner's writers so the
	// user sees it live. Otherwise stdout is captured and returned.
	Inherit bool
}

// String renders the command line for logs and error messages.
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner executes commands. Implementations surface a non-zero exit as an
// error.
type Runner interface {
	Run(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes cmd and waits for it. For captured commands, stdout is
// returned and stderr is included in the error on failure.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (string, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	if cmd.Inherit {
		c.Stdin = r.Stdin
		c.Stdout = r.Stdout
		c.Stderr = r.Stderr
		if err := c.Run(); err != nil {
			return "", fmt.Errorf("%s: %w", cmd, err)
		}
		return "", nil
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return "", fmt.Errorf("%s: %w (stderr: %s)", cmd, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Available reports whether name resolves to an executable on PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

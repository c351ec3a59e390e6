// Package processtest provides a recording process.Runner for tests.
package processtest

import (
	"context"
	"sync"

	"github.com/create-fs-app/cli/internal/process"
)

// Recorder records commands instead of running them.
type Recorder struct {
	// Err, when set, is returned for every command.
	Err error

	// Output is returned for captured commands.
	Output string

	mu       sync.Mutex
	commands []process.Command
}

var _ process.Runner = (*Recorder)(nil)

// Run records cmd.
func (r *Recorder) Run(_ context.Context, cmd process.Command) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
	if r.Err != nil {
		return "", r.Err
	}
	return r.Output, nil
}

// Commands returns every recorded command.
func (r *Recorder) Commands() []process.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]process.Command(nil), r.commands...)
}

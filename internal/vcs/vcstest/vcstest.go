// Package vcstest provides an in-memory vcs.Client for tests.
package vcstest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/create-fs-app/cli/internal/fsutil"
	"github.com/create-fs-app/cli/internal/vcs"
)

// Client serves clones from local directories keyed by URL and records every
// call. It never touches the network.
type Client struct {
	// Sources maps a clone URL to the directory whose contents it yields.
	Sources map[string]string

	// CloneErr and CommitErr, when set, are returned by the matching call.
	CloneErr  error
	CommitErr error

	mu      sync.Mutex
	clones  []vcs.CloneOptions
	commits []string
}

var _ vcs.Client = (*Client)(nil)

// Clone copies the source registered for opts.URL into dir and adds an
// empty metadata directory, as a real clone would.
func (c *Client) Clone(_ context.Context, dir string, opts vcs.CloneOptions) error {
	c.mu.Lock()
	c.clones = append(c.clones, opts)
	c.mu.Unlock()

	if c.CloneErr != nil {
		return c.CloneErr
	}
	src, ok := c.Sources[opts.URL]
	if !ok {
		return fmt.Errorf("repository not found: %s", opts.URL)
	}
	if err := fsutil.CopyDir(src, dir); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(dir, vcs.MetadataDir), 0o755)
}

// InitialCommit records dir and creates the metadata directory.
func (c *Client) InitialCommit(_ context.Context, dir, message string) error {
	c.mu.Lock()
	c.commits = append(c.commits, message)
	c.mu.Unlock()

	if c.CommitErr != nil {
		return c.CommitErr
	}
	return os.MkdirAll(filepath.Join(dir, vcs.MetadataDir), 0o755)
}

// Clones returns the options of every Clone call so far.
func (c *Client) Clones() []vcs.CloneOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]vcs.CloneOptions(nil), c.clones...)
}

// Commits returns the message of every InitialCommit call so far.
func (c *Client) Commits() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.commits...)
}

package vcs

import (
	"context"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Fallback identity for the initial commit when no git user is configured.
const (
	fallbackName  = "create-fs-app"
	fallbackEmail = "create-fs-app@localhost"
)

// GoGit implements Client with go-git.
type GoGit struct {
	now func() time.Time
}

// NewGoGit returns a go-git backed client.
func NewGoGit() *GoGit {
	return &GoGit{now: time.Now}
}

// Clone performs the clone in-process.
func (g *GoGit) Clone(ctx context.Context, dir string, opts CloneOptions) error {
	co := &git.CloneOptions{
		URL:          opts.URL,
		Depth:        opts.Depth,
		SingleBranch: opts.SingleBranch,
		Tags:         git.NoTags,
	}
	if opts.Branch != "" {
		co.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
	}
	if _, err := git.PlainCloneContext(ctx, dir, false, co); err != nil {
		return fmt.Errorf("cloning %s: %w", opts.URL, err)
	}
	return nil
}

// InitialCommit initializes a repository on branch main, stages every file
// and commits it.
func (g *GoGit) InitialCommit(ctx context.Context, dir, message string) error {
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: plumbing.Main},
	})
	if err != nil {
		return fmt.Errorf("initializing repository: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}

	sig := g.signature()
	if _, err := wt.Commit(message, &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: true,
	}); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// signature uses the global git identity when one is configured.
func (g *GoGit) signature() *object.Signature {
	sig := &object.Signature{Name: fallbackName, Email: fallbackEmail, When: g.now()}
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}

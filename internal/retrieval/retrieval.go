// Package retrieval materializes a template into a target directory, from
// the cache when possible and from its remote repository otherwise.
package retrieval

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/create-fs-app/cli/internal/cache"
	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/fsutil"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/templates"
	"github.com/create-fs-app/cli/internal/vcs"
)

// ErrSubfolderNotFound is returned when a template's subfolder is missing
// from the cloned repository.
var ErrSubfolderNotFound = errors.New("subfolder not found")

// Error reports a failed retrieval. Its message includes the cause.
type Error struct {
	URL string
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to retrieve template %s: %s: %v", e.URL, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is classifies every retrieval failure as oerrors.ErrRetrieval.
func (e *Error) Is(target error) bool {
	return target == oerrors.ErrRetrieval
}

// Retriever fetches templates.
type Retriever struct {
	cloner vcs.Cloner
	cache  *cache.Cache
}

// New returns a retriever. A nil cache disables cache reads and writes.
func New(cloner vcs.Cloner, c *cache.Cache) *Retriever {
	return &Retriever{cloner: cloner, cache: c}
}

// Clone writes the template described by meta into targetDir. An empty
// branch means meta's branch. A cached copy is used without touching the
// network; otherwise the repository is cloned at depth 1 and the resulting
// tree is cached on a best-effort basis. The result never contains
// version-control metadata.
func (r *Retriever) Clone(ctx context.Context, meta templates.Metadata, targetDir, branch string) error {
	if branch != "" {
		meta.Branch = branch
	}

	if r.cache != nil {
		if cached, ok := r.cache.PathFor(meta); ok {
			output.Debug("using cached template", "url", meta.URL, "path", cached)
			if err := fsutil.CopyDir(cached, targetDir); err != nil {
				return &Error{URL: meta.URL, Op: "copy from cache", Err: err}
			}
			return nil
		}
	}

	if meta.Subfolder == "" {
		return r.cloneDirect(ctx, meta, targetDir)
	}
	return r.cloneSubfolder(ctx, meta, targetDir)
}

func (r *Retriever) cloneDirect(ctx context.Context, meta templates.Metadata, targetDir string) error {
	output.Debug("cloning template", "url", meta.URL, "branch", meta.BranchOrDefault())
	err := r.cloner.Clone(ctx, targetDir, vcs.CloneOptions{
		URL:    meta.URL,
		Branch: meta.BranchOrDefault(),
		Depth:  1,
	})
	if err != nil {
		return &Error{URL: meta.URL, Op: "clone", Err: err}
	}
	if err := os.RemoveAll(filepath.Join(targetDir, vcs.MetadataDir)); err != nil {
		return &Error{URL: meta.URL, Op: "remove repository metadata", Err: err}
	}

	r.populate(meta, targetDir)
	return nil
}

func (r *Retriever) cloneSubfolder(ctx context.Context, meta templates.Metadata, targetDir string) error {
	tmp := filepath.Join(filepath.Dir(targetDir), ".create-fs-app-"+uuid.NewString())
	defer func() {
		if err := os.RemoveAll(tmp); err != nil {
			output.Warn("cannot remove temporary clone", "path", tmp, "err", err)
		}
	}()

	output.Debug("cloning template repository", "url", meta.URL, "branch", meta.BranchOrDefault(), "subfolder", meta.Subfolder)
	err := r.cloner.Clone(ctx, tmp, vcs.CloneOptions{
		URL:          meta.URL,
		Branch:       meta.BranchOrDefault(),
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil {
		return &Error{URL: meta.URL, Op: "clone", Err: err}
	}

	src := filepath.Join(tmp, filepath.FromSlash(meta.Subfolder))
	if !fsutil.IsDir(src) {
		return &Error{
			URL: meta.URL,
			Op:  "extract subfolder",
			Err: fmt.Errorf("%w: %s", ErrSubfolderNotFound, meta.Subfolder),
		}
	}
	if err := fsutil.CopyDir(src, targetDir, vcs.MetadataDir); err != nil {
		return &Error{URL: meta.URL, Op: "extract subfolder", Err: err}
	}

	r.populate(meta, src)
	return nil
}

// populate caches tree. Failures only warn.
func (r *Retriever) populate(meta templates.Metadata, tree string) {
	if r.cache == nil {
		return
	}
	if _, err := r.cache.Populate(meta, tree); err != nil {
		output.Warn("failed to cache template, continuing without cache", "url", meta.URL, "err", err)
	}
}

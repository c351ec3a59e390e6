// Package cache keeps local copies of template trees so that repeated
// scaffolds of the same template do not clone again. Each template lives in
// its own directory under the cache root next to a JSON index that records
// when it was cached and last used.
//
// There is no cross-process lock. Entries are staged in a private directory
// and renamed into place, so a reader never sees a half-written entry, but
// two processes storing the same key race and the last rename wins.
package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/create-fs-app/cli/internal/fsutil"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/templates"
	"github.com/create-fs-app/cli/internal/vcs"
)

// stagingPrefix marks directories under the root that are still being
// written.
const stagingPrefix = ".staging-"

// Cache is a template cache rooted at a directory.
type Cache struct {
	root   string
	cloner vcs.Cloner
	now    func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source used for index timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New returns a cache rooted at root. The cloner is used by Store.
func New(root string, cloner vcs.Cloner, opts ...Option) *Cache {
	c := &Cache{root: root, cloner: cloner, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Root returns the cache root directory.
func (c *Cache) Root() string {
	return c.root
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.root, key)
}

// Has reports whether a tree is cached for meta.
func (c *Cache) Has(meta templates.Metadata) bool {
	key := Key(meta)
	ok := fsutil.IsDir(c.path(key))
	output.Debug("cache lookup", "key", key, "hit", ok)
	return ok
}

// PathFor returns the cached tree for meta and records the use. The second
// result is false on a miss.
func (c *Cache) PathFor(meta templates.Metadata) (string, bool) {
	if !c.Has(meta) {
		return "", false
	}
	key := Key(meta)

	idx := c.loadIndex()
	if e, ok := idx.Templates[key]; ok {
		e.LastUsed = c.now().UTC()
		idx.Templates[key] = e
		if err := c.saveIndex(idx); err != nil {
			output.Debug("cannot update cache index", "key", key, "err", err)
		}
	}
	return c.path(key), true
}

// Store clones meta's repository at depth 1 and caches the tree, replacing
// any previous entry. It returns the cached path.
func (c *Cache) Store(ctx context.Context, meta templates.Metadata) (string, error) {
	if c.cloner == nil {
		return "", errors.New("cache has no cloner")
	}
	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	tmp := filepath.Join(c.root, "temp-"+Key(meta)+"-"+uuid.NewString())
	defer os.RemoveAll(tmp)

	err := c.cloner.Clone(ctx, tmp, vcs.CloneOptions{
		URL:          meta.URL,
		Branch:       meta.BranchOrDefault(),
		Depth:        1,
		SingleBranch: true,
	})
	if err != nil {
		return "", err
	}

	src := tmp
	if meta.Subfolder != "" {
		src = filepath.Join(tmp, filepath.FromSlash(meta.Subfolder))
		if !fsutil.IsDir(src) {
			return "", fmt.Errorf("subfolder %q not found in %s", meta.Subfolder, meta.URL)
		}
	}
	return c.Populate(meta, src)
}

// Populate caches the tree at src for meta, replacing any previous entry.
// Version-control metadata is not copied. The index is updated only after
// the tree is in place.
func (c *Cache) Populate(meta templates.Metadata, src string) (string, error) {
	key := Key(meta)
	if err := os.MkdirAll(c.root, 0o755); err != nil {
		return "", fmt.Errorf("creating cache directory: %w", err)
	}

	staging := filepath.Join(c.root, stagingPrefix+key+"-"+uuid.NewString())
	defer os.RemoveAll(staging)

	if err := fsutil.CopyDir(src, staging, vcs.MetadataDir); err != nil {
		return "", fmt.Errorf("copying template into cache: %w", err)
	}

	dst := c.path(key)
	if err := os.RemoveAll(dst); err != nil {
		return "", fmt.Errorf("removing stale cache entry: %w", err)
	}
	if err := os.Rename(staging, dst); err != nil {
		return "", fmt.Errorf("moving template into cache: %w", err)
	}

	now := c.now().UTC()
	idx := c.loadIndex()
	idx.Templates[key] = indexEntry{
		URL:      meta.URL,
		Branch:   meta.BranchOrDefault(),
		CachedAt: now,
		LastUsed: now,
	}
	if err := c.saveIndex(idx); err != nil {
		_ = os.RemoveAll(dst)
		return "", err
	}

	output.Debug("template cached", "key", key)
	return dst, nil
}

// Clear removes the whole cache. Clearing an absent cache succeeds.
func (c *Cache) Clear() error {
	if err := os.RemoveAll(c.root); err != nil {
		return fmt.Errorf("clearing cache: %w", err)
	}
	return nil
}

// Entry describes one cached template.
type Entry struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	Branch    string    `json:"branch"`
	CachedAt  time.Time `json:"cachedAt"`
	LastUsed  time.Time `json:"lastUsed"`
	SizeBytes int64     `json:"sizeBytes"`
}

// Stats summarizes the cache contents.
type Stats struct {
	TotalEntries   int     `json:"totalEntries"`
	TotalSizeBytes int64   `json:"totalSizeBytes"`
	Entries        []Entry `json:"entries"`
}

// Stats reports every indexed entry whose directory still exists, most
// recently used first.
func (c *Cache) Stats() (Stats, error) {
	idx := c.loadIndex()
	st := Stats{Entries: []Entry{}}

	for key, e := range idx.Templates {
		if !fsutil.IsDir(c.path(key)) {
			continue
		}
		size, err := fsutil.DirSize(c.path(key))
		if err != nil {
			return Stats{}, fmt.Errorf("sizing cache entry %s: %w", key, err)
		}
		st.Entries = append(st.Entries, Entry{
			Key:       key,
			URL:       e.URL,
			Branch:    e.Branch,
			CachedAt:  e.CachedAt,
			LastUsed:  e.LastUsed,
			SizeBytes: size,
		})
		st.TotalSizeBytes += size
	}

	sort.Slice(st.Entries, func(i, j int) bool {
		if !st.Entries[i].LastUsed.Equal(st.Entries[j].LastUsed) {
			return st.Entries[i].LastUsed.After(st.Entries[j].LastUsed)
		}
		return st.Entries[i].Key < st.Entries[j].Key
	})
	st.TotalEntries = len(st.Entries)
	return st, nil
}

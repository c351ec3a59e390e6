package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/create-fs-app/cli/internal/fsutil"
	"github.com/create-fs-app/cli/internal/output"
)

const (
	indexFile    = "cache-metadata.json"
	indexVersion = "1"
)

// index is the on-disk bookkeeping file.
type index struct {
	Version   string                `json:"version"`
	Templates map[string]indexEntry `json:"templates"`
}

type indexEntry struct {
	URL      string    `json:"url"`
	Branch   string    `json:"branch"`
	CachedAt time.Time `json:"cachedAt"`
	LastUsed time.Time `json:"lastUsed"`
}

func newIndex() *index {
	return &index{Version: indexVersion, Templates: map[string]indexEntry{}}
}

// loadIndex reads the index. A missing or unreadable index yields an empty
// one.
func (c *Cache) loadIndex() *index {
	data, err := os.ReadFile(filepath.Join(c.root, indexFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			output.Warn("cannot read cache index, treating cache as empty", "err", err)
		}
		return newIndex()
	}

	idx := newIndex()
	if err := json.Unmarshal(data, idx); err != nil {
		output.Warn("corrupt cache index, treating cache as empty", "err", err)
		return newIndex()
	}
	if idx.Templates == nil {
		idx.Templates = map[string]indexEntry{}
	}
	return idx
}

// saveIndex replaces the index file atomically.
func (c *Cache) saveIndex(idx *index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache index: %w", err)
	}
	if err := fsutil.WriteFileAtomic(filepath.Join(c.root, indexFile), data, 0o644); err != nil {
		return fmt.Errorf("writing cache index: %w", err)
	}
	return nil
}

package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/create-fs-app/cli/internal/cache"
	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/config"
	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/process"
	"github.com/create-fs-app/cli/internal/process/processtest"
	"github.com/create-fs-app/cli/internal/templates"
	"github.com/create-fs-app/cli/internal/testutil"
	"github.com/create-fs-app/cli/internal/vcs"
	"github.com/create-fs-app/cli/internal/vcs/vcstest"
)

const warmKey = "turborepo-nextjs-nestjs-postgresql-prisma"

func newGlobalConfig(t *testing.T) (*cmdtypes.GlobalConfig, *vcstest.Client) {
	t.Helper()
	src := t.TempDir()
	testutil.WriteTree(t, src, map[string]string{
		"package.json":       `{"name": "template"}`,
		"apps/web/README.md": "# web\n",
	})
	entry, ok := templates.Default().Get(warmKey)
	require.True(t, ok)

	git := &vcstest.Client{Sources: map[string]string{entry.Metadata.URL: src}}
	gc := &cmdtypes.GlobalConfig{
		Resolved: &config.Resolved{
			CacheDir:     filepath.Join(t.TempDir(), "cache"),
			CacheEnabled: true,
			GitBackend:   string(vcs.BackendGoGit),
		},
		Env: &cmdtypes.Env{
			Registry: templates.Default(),
			Runner:   &processtest.Recorder{},
			NewGit: func(vcs.Backend, process.Runner) (vcs.Client, error) {
				return git, nil
			},
		},
	}
	return gc, git
}

func run(gc *cmdtypes.GlobalConfig, args ...string) (string, error) {
	c := NewCacheCmd(gc)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestCacheStats_Empty(t *testing.T) {
	gc, _ := newGlobalConfig(t)

	out, err := run(gc, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache Statistics")
	assert.Contains(t, out, "Total templates: 0")
	assert.Contains(t, out, "Cache size: 0 B")
}

func TestCacheWarmStatsClear(t *testing.T) {
	gc, git := newGlobalConfig(t)

	out, err := run(gc, "warm", "nextjs-nestjs", "--branch", "next")
	require.NoError(t, err)
	assert.Contains(t, out, "Cached "+warmKey)

	clones := git.Clones()
	require.Len(t, clones, 1)
	assert.Equal(t, "next", clones[0].Branch)
	assert.Equal(t, 1, clones[0].Depth)

	out, err = run(gc, "stats", "-o", "json")
	require.NoError(t, err)
	var st cache.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	require.Equal(t, 1, st.TotalEntries)
	assert.Equal(t, "next", st.Entries[0].Branch)
	assert.Positive(t, st.TotalSizeBytes)

	out, err = run(gc, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Total templates: 1")
	assert.Contains(t, out, "LAST USED")

	out, err = run(gc, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Cache cleared")
	assert.NoDirExists(t, gc.Resolved.CacheDir)
}

func TestCacheWarm_Errors(t *testing.T) {
	t.Run("unknown template", func(t *testing.T) {
		gc, git := newGlobalConfig(t)

		_, err := run(gc, "warm", "cobol")
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitNotFound, oerrors.ExitCodeFromError(err))
		assert.Empty(t, git.Clones())
	})

	t.Run("clone failure", func(t *testing.T) {
		gc, git := newGlobalConfig(t)
		git.CloneErr = errors.New("network unreachable")

		_, err := run(gc, "warm", warmKey)
		require.Error(t, err)
		assert.Equal(t, oerrors.ExitRetrievalError, oerrors.ExitCodeFromError(err))
		assert.Contains(t, err.Error(), "network unreachable")
	})
}

func TestWriteStats(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	st := cache.Stats{
		TotalEntries:   1,
		TotalSizeBytes: 2048,
		Entries: []cache.Entry{{
			Key:       "abc123",
			Branch:    "main",
			CachedAt:  now.Add(-2 * time.Hour),
			LastUsed:  now.Add(-time.Minute),
			SizeBytes: 2048,
		}},
	}

	var buf bytes.Buffer
	writeStats(&buf, st, now)
	out := buf.String()
	assert.Contains(t, out, "Cache size: 2.0 kB")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "1 minute ago")
}

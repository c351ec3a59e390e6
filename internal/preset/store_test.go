package preset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/project"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir(), WithClock(func() time.Time { return fixedNow }))
}

func testStack() project.Stack {
	return project.Stack{
		Monorepo:       project.Turborepo,
		PackageManager: project.NPM,
		Apps: project.Apps{
			Frontend: project.FrontendApp{Framework: project.React, Styling: project.Tailwind, Linting: true},
			Backend: project.BackendApp{
				Framework: project.Express,
				Database:  project.MongoDB,
				ORM:       project.Mongoose,
				Docker:    true,
			},
		},
	}
}

func TestBuiltins(t *testing.T) {
	names := []string{}
	for _, p := range Builtins() {
		names = append(names, p.Name)
		assert.True(t, p.BuiltIn)
		assert.NoError(t, p.Config.Validate(), p.Name)
	}
	assert.Equal(t, []string{"saas-starter", "ecommerce", "minimal"}, names)

	p, ok := Builtin("minimal")
	require.True(t, ok)
	assert.False(t, p.Config.Apps.Frontend.Linting)
	assert.False(t, p.Config.Apps.Backend.Docker)
	assert.Equal(t, project.ORM(""), p.Config.Apps.Backend.ORM)

	_, ok = Builtin("nope")
	assert.False(t, ok)
}

func TestBuiltins_ReturnsCopies(t *testing.T) {
	p := Builtins()[0]
	p.Config.Monorepo = project.Nx
	assert.Equal(t, project.Turborepo, Builtins()[0].Config.Monorepo)
}

func TestStore_SaveAndGet(t *testing.T) {
	s := newTestStore(t)

	saved, err := s.Save("test-preset", testStack(), "Test preset")
	require.NoError(t, err)
	assert.Equal(t, fixedNow, saved.CreatedAt)
	assert.Nil(t, saved.LastUsed)
	assert.True(t, s.Has("test-preset"))
	assert.FileExists(t, s.Path())

	got, ok := s.Get("test-preset")
	require.True(t, ok)
	assert.Equal(t, "Test preset", got.Description)
	assert.Equal(t, testStack(), got.Config)
	require.NotNil(t, got.LastUsed)
	assert.Equal(t, fixedNow, *got.LastUsed)

	// lastUsed is persisted.
	reloaded := s.List()
	require.Len(t, reloaded, 1)
	require.NotNil(t, reloaded[0].LastUsed)
}

func TestStore_GetMissing(t *testing.T) {
	s := newTestStore(t)
	_, ok := s.Get("non-existent")
	assert.False(t, ok)
	assert.NoFileExists(t, s.Path())
}

func TestStore_GetPrefersBuiltin(t *testing.T) {
	s := newTestStore(t)
	p, ok := s.Get("saas-starter")
	require.True(t, ok)
	assert.True(t, p.BuiltIn)
	assert.Equal(t, project.NextJS, p.Config.Apps.Frontend.Framework)
	assert.NoFileExists(t, s.Path(), "built-in lookups do not write")
}

func TestStore_SaveRejects(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save("  ", testStack(), "")
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	_, err = s.Save("minimal", testStack(), "")
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	bad := testStack()
	bad.Monorepo = "rush"
	_, err = s.Save("bad", bad, "")
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	assert.Empty(t, s.List())
}

func TestStore_SaveReplaces(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save("mine", testStack(), "first")
	require.NoError(t, err)

	stack := testStack()
	stack.PackageManager = project.PNPM
	_, err = s.Save("mine", stack, "second")
	require.NoError(t, err)

	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "second", list[0].Description)
	assert.Equal(t, project.PNPM, list[0].Config.PackageManager)
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save("mine", testStack(), "")
	require.NoError(t, err)

	deleted, err := s.Delete("mine")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, s.Has("mine"))

	deleted, err = s.Delete("mine")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestStore_ListAndAll(t *testing.T) {
	s := newTestStore(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := s.Save(name, testStack(), "")
		require.NoError(t, err)
	}

	var names []string
	for _, p := range s.List() {
		names = append(names, p.Name)
		assert.False(t, p.BuiltIn)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
	assert.Len(t, s.All(), 6)
}

func TestStore_Config(t *testing.T) {
	s := newTestStore(t)

	cfg, err := s.Config("ecommerce", "shop")
	require.NoError(t, err)
	assert.Equal(t, "shop", cfg.Name)
	assert.Equal(t, project.MongoDB, cfg.Apps.Backend.Database)
	assert.NoError(t, cfg.Validate())

	_, err = s.Config("nope", "shop")
	assert.ErrorIs(t, err, oerrors.ErrNotFound)
	assert.Contains(t, err.Error(), "preset list")
}

func TestStore_CorruptFile(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	assert.Empty(t, s.List())
	assert.False(t, s.Has("anything"))

	_, err := s.Save("fresh", testStack(), "")
	require.NoError(t, err)
	assert.True(t, s.Has("fresh"))
}

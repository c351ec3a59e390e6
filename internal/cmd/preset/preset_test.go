package preset

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/config"
	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/preset"
	"github.com/create-fs-app/cli/internal/project"
)

func newGlobalConfig(t *testing.T) *cmdtypes.GlobalConfig {
	t.Helper()
	return &cmdtypes.GlobalConfig{Resolved: &config.Resolved{PresetsDir: t.TempDir()}}
}

func run(gc *cmdtypes.GlobalConfig, args ...string) (string, error) {
	c := NewPresetCmd(gc)
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestPresetList_BuiltinsOnly(t *testing.T) {
	gc := newGlobalConfig(t)

	out, err := run(gc, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Built-in Presets:")
	assert.NotContains(t, out, "Your Presets:")
	for _, p := range preset.Builtins() {
		assert.Contains(t, out, p.Name)
	}
	assert.Contains(t, out, "--preset <name>")
}

func TestPresetSaveListDelete(t *testing.T) {
	gc := newGlobalConfig(t)

	out, err := run(gc, "save", "api-first",
		"--monorepo", "nx", "--frontend", "react", "--backend", "fastify-ts",
		"--database", "postgresql", "--orm", "drizzle", "--package-manager", "yarn",
		"-d", "Nx + Fastify")
	require.NoError(t, err)
	assert.Contains(t, out, "Preset api-first saved")

	out, err = run(gc, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Your Presets:")
	assert.Contains(t, out, "Nx + Fastify")

	out, err = run(gc, "list", "-o", "json")
	require.NoError(t, err)
	var all []preset.Preset
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	require.Len(t, all, len(preset.Builtins())+1)
	saved := all[len(all)-1]
	assert.Equal(t, "api-first", saved.Name)
	assert.Equal(t, project.Nx, saved.Config.Monorepo)
	assert.Equal(t, project.Yarn, saved.Config.PackageManager)
	assert.Equal(t, project.Drizzle, saved.Config.Apps.Backend.ORM)

	out, err = run(gc, "delete", "api-first")
	require.NoError(t, err)
	assert.Contains(t, out, "Preset api-first deleted")
	assert.False(t, gc.Presets().Has("api-first"))
}

func TestPresetShow(t *testing.T) {
	gc := newGlobalConfig(t)

	out, err := run(gc, "show", "saas-starter")
	require.NoError(t, err)

	var p preset.Preset
	require.NoError(t, yaml.Unmarshal([]byte(out), &p))
	assert.Equal(t, "saas-starter", p.Name)
	assert.Equal(t, project.NextJS, p.Config.Apps.Frontend.Framework)
	assert.Equal(t, project.Prisma, p.Config.Apps.Backend.ORM)
	assert.True(t, p.BuiltIn)
}

func TestPresetErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		msg  string
	}{
		{
			name: "show unknown",
			args: []string{"show", "nope"},
			code: oerrors.ExitNotFound,
			msg:  `preset "nope" not found`,
		},
		{
			name: "delete unknown",
			args: []string{"delete", "nope"},
			code: oerrors.ExitNotFound,
			msg:  `preset "nope" not found`,
		},
		{
			name: "save over built-in",
			args: []string{"save", "minimal",
				"--monorepo", "turborepo", "--frontend", "react", "--backend", "express", "--database", "mongodb"},
			code: oerrors.ExitValidationError,
			msg:  "is a built-in preset",
		},
		{
			name: "save without stack",
			args: []string{"save", "partial", "--monorepo", "turborepo"},
			code: oerrors.ExitValidationError,
			msg:  "missing required flags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gc := newGlobalConfig(t)

			_, err := run(gc, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, oerrors.ExitCodeFromError(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

const (
	demoKey   = "turborepo-react-express-mongodb-mongoose"
	customURL = "https://github.com/acme/starter"
)

var demoTemplate = map[string]string{
	"package.json":               `{"name": "template", "private": true}`,
	"apps/frontend/package.json": `{"name": "web"}`,
	"apps/backend/package.json":  `{"name": "api"}`,
	"apps/backend/.env.example":  "PORT=3000\nDATABASE_URL=\"changeme\"\n",
	"README.md":                  "Welcome to {{PROJECT_NAME}}.\n",
	"docker-compose.yml":         "services: {}\n",
}

// cfaEnv lists the environment variables the config resolver reads.
var cfaEnv = []string{
	"CFA_CONFIG", "CFA_CACHE_DIR", "CFA_PRESETS_DIR",
	"CFA_CACHE_ENABLED", "CFA_GIT_BACKEND", "CFA_LOG_TIMESTAMPS",
}

type testEnv struct {
	env     *cmdtypes.Env
	git     *vcstest.Client
	runner  *processtest.Recorder
	workDir string
	home    string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range cfaEnv {
		t.Setenv(k, "")
	}

	src := t.TempDir()
	testutil.WriteTree(t, src, demoTemplate)
	sources := map[string]string{customURL: src}
	for _, e := range templates.Default().List() {
		sources[e.Metadata.URL] = src
	}

	te := &testEnv{
		git:     &vcstest.Client{Sources: sources},
		runner:  &processtest.Recorder{},
		workDir: t.TempDir(),
		home:    home,
	}
	te.env = &cmdtypes.Env{
		Registry: templates.Default(),
		Runner:   te.runner,
		NewGit: func(vcs.Backend, process.Runner) (vcs.Client, error) {
			return te.git, nil
		},
		WorkDir:     func() (string, error) { return te.workDir, nil },
		In:          strings.NewReader(""),
		Interactive: func() bool { return false },
	}
	return te
}

func (te *testEnv) run(args ...string) (stdout, stderr string, err error) {
	root := NewRootCmdWithEnv(te.env)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "create-fs-app [name]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, name := range []string{"config", "verbose", "timestamps", "git-backend", "no-cache"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	for _, name := range []string{"template", "template-url", "preset", "branch", "skip-git", "skip-install", "yes", "monorepo"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	for _, want := range []string{"list", "info", "health", "preset", "cache", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_InvalidGitBackend(t *testing.T) {
	te := newTestEnv(t)

	_, _, err := te.run("--git-backend", "svn", "list")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
}

func TestRootCmd_InvalidFlagValue(t *testing.T) {
	te := newTestEnv(t)

	_, _, err := te.run("demo", "--frontend", "svelte")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, oerrors.ExitCodeFromError(err))
	assert.Contains(t, err.Error(), "valid options")
}

func TestRootCmd_VerboseLogsResolvedConfig(t *testing.T) {
	te := newTestEnv(t)

	_, stderr, err := te.run("--verbose", "list")
	require.NoError(t, err)
	assert.Contains(t, stderr, "config value resolved")
	assert.Contains(t, stderr, "cacheDir")
}

func TestRootCmd_TooManyArgs(t *testing.T) {
	te := newTestEnv(t)

	_, _, err := te.run("one", "two")
	assert.Error(t, err)
}

func TestRootCmd_ConfigShowReportsSources(t *testing.T) {
	te := newTestEnv(t)
	t.Setenv(config.EnvGitBackend, "exec")

	stdout, _, err := te.run("--no-cache", "config", "show", "-o", "json")
	require.NoError(t, err)

	var values []config.ResolvedValue
	require.NoError(t, json.Unmarshal([]byte(stdout), &values))
	sources := make(map[string]config.ResolvedValue, len(values))
	for _, v := range values {
		sources[v.Key] = v
	}

	assert.Equal(t, config.ResolvedValue{Key: "git.backend", Value: "exec", Source: config.SourceEnv}, sources["git.backend"])
	assert.Equal(t, config.ResolvedValue{Key: "cache.enabled", Value: "false", Source: config.SourceFlag}, sources["cache.enabled"])
	assert.Equal(t, config.SourceDefault, sources["presetsDir"].Source)
}

// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	cachecmd "github.com/create-fs-app/cli/internal/cmd/cache"
	configcmd "github.com/create-fs-app/cli/internal/cmd/config"
	presetcmd "github.com/create-fs-app/cli/internal/cmd/preset"
	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/config"
	"github.com/create-fs-app/cli/internal/output"
)

// NewRootCmd creates the root command for the create-fs-app CLI. The root
// command itself creates a project.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithEnv(cmdtypes.DefaultEnv())
}

// NewRootCmdWithEnv creates the root command with explicit collaborators.
func NewRootCmdWithEnv(env *cmdtypes.Env) *cobra.Command {
	gc := &cmdtypes.GlobalConfig{Env: env}

	var (
		timestampsFlag bool
		gitBackendFlag string
		noCacheFlag    bool
		cf             createFlags
	)

	rootCmd := &cobra.Command{
		Use:   "create-fs-app [name]",
		Short: "Create a full-stack monorepo application",
		Long: `create-fs-app generates a full-stack TypeScript monorepo from a template.

Pick a stack interactively, with flags, from a preset, or by template key.
The matching template is cloned (or copied from the local cache), customized
for your project, committed to a fresh git repository and installed.

Examples:
  # Interactive mode
  create-fs-app

  # Choose the stack with flags
  create-fs-app my-app --monorepo turborepo --frontend next.js \
    --backend nest.js --database postgresql --orm prisma

  # Use a catalog template
  create-fs-app my-app --template nx-react-express-mongodb-mongoose

  # Use a preset
  create-fs-app my-app --preset saas-starter`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			return initializeGlobals(c, gc, timestampsFlag, gitBackendFlag, noCacheFlag)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, gc, &cf)
		},
	}

	// Add global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&gc.ConfigFlag, "config", "", "Path to config file (env: CFA_CONFIG)")
	pf.BoolVarP(&gc.Verbose, "verbose", "v", false, "Enable verbose output")
	pf.BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	pf.StringVar(&gitBackendFlag, "git-backend", "", "Git backend: go-git, exec (env: CFA_GIT_BACKEND)")
	pf.BoolVar(&noCacheFlag, "no-cache", false, "Bypass the template cache for this run")

	cf.AddTo(rootCmd)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitValidationError, Err: err}
	})

	rootCmd.AddCommand(
		NewListCmd(gc),
		NewInfoCmd(gc),
		NewHealthCmd(gc),
		presetcmd.NewPresetCmd(gc),
		cachecmd.NewCacheCmd(gc),
		configcmd.NewConfigCmd(gc),
		NewVersionCmd(gc),
	)

	return rootCmd
}

// legacyFlagNames maps the original negated flag spellings onto the current
// ones.
func legacyFlagNames(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "no-git":
		name = "skip-git"
	case "no-install":
		name = "skip-install"
	}
	return pflag.NormalizedName(name)
}

// initializeGlobals resolves configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command, gc *cmdtypes.GlobalConfig, timestamps bool, gitBackend string, noCache bool) error {
	opts := config.ResolveOptions{
		ConfigFlag: gc.ConfigFlag,
		NoCache:    noCache,
		GitBackend: gitBackend,
	}
	// Only an explicit --timestamps overrides env and config.
	if cmd.Flags().Changed("timestamps") {
		opts.Timestamps = output.BoolPtr(timestamps)
	}

	resolved, err := config.Resolve(opts)
	if err != nil {
		return cmdtypes.Fail(err)
	}
	gc.Resolved = resolved

	output.SetupLogging(output.LogConfig{
		Verbose:    gc.Verbose,
		Timestamps: output.BoolPtr(resolved.Timestamps),
		Writer:     cmd.ErrOrStderr(),
	})

	if gc.Verbose {
		config.LogResolvedValues(resolved.Values)
	}
	return nil
}

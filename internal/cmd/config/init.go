package config

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/config"
	"github.com/create-fs-app/cli/internal/output"
)

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new configuration file",
		Long: `Create a new create-fs-app configuration file with default values.

The configuration file is created at ~/.create-fs-app/config.yaml by default.
Use the --config flag or CFA_CONFIG to choose a different location.

Examples:
  # Initialize configuration
  create-fs-app config init

  # Overwrite existing configuration
  create-fs-app config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			path, err := configPath(gc)
			if err != nil {
				return cmdtypes.Fail(err)
			}
			if err := config.WriteDefault(path, force); err != nil {
				return cmdtypes.Fail(err)
			}
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration written to "+output.StyleNoun.Render(path)))
			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

// configPath prefers the file resolved at startup, then --config, then the
// default location.
func configPath(gc *cmdtypes.GlobalConfig) (string, error) {
	if gc.Resolved != nil && gc.Resolved.ConfigFile != "" {
		return gc.Resolved.ConfigFile, nil
	}
	if gc.ConfigFlag != "" {
		return gc.ConfigFlag, nil
	}
	path, err := config.GetConfigFile()
	if err != nil {
		return "", fmt.Errorf("getting config file path: %w", err)
	}
	return path, nil
}

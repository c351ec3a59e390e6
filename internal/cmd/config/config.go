// Package config implements `create-fs-app config`: writing the default
// config file and showing where each effective setting came from.
package config

import (
	"github.com/spf13/cobra"

	"github.com/create-fs-app/cli/internal/cmdtypes"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Manage the create-fs-app configuration file",
		Long: `Manage ~/.create-fs-app/config.yaml.

Settings are resolved per run with the precedence
flag > CFA_* environment variable > config file > default.`,
	}

	c.AddCommand(
		NewConfigInitCmd(gc),
		NewConfigShowCmd(gc),
	)
	return c
}

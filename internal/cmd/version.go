package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		format = output.FormatTable
		short  bool
	)

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show create-fs-app version information.

Displays:
  - create-fs-app version, commit, and build date
  - versions of git, node and the package managers found in PATH`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			info := version.Get()
			if short {
				fmt.Fprintln(c.OutOrStdout(), info.Version)
				return nil
			}

			info.Tools = version.DetectTools(c.Context(), gc.Env.Runner)
			if format != output.FormatTable {
				return output.WriteStructured(c.OutOrStdout(), format, info)
			}
			fmt.Fprintln(c.OutOrStdout(), info.String())
			return nil
		},
	}

	c.Flags().BoolVar(&short, "short", false, "Print only the version number")
	c.Flags().VarP(&format, "output", "o", "Output format: table, json, yaml")

	return c
}

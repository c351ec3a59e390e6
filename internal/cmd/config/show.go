package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/config"
	"github.com/create-fs-app/cli/internal/output"
)

// NewConfigShowCmd creates the config show command.
func NewConfigShowCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	format := output.FormatTable

	c := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show every setting used by this invocation together with its source:
flag, env, config or default.

Examples:
  create-fs-app config show
  CFA_GIT_BACKEND=exec create-fs-app config show -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if gc.Resolved == nil {
				return cmdtypes.Fail(errors.New("configuration was not resolved"))
			}
			return writeResolved(c.OutOrStdout(), gc.Resolved.Values, format)
		},
	}

	c.Flags().VarP(&format, "output", "o", "Output format: table, json, yaml")

	return c
}

func writeResolved(w io.Writer, values []config.ResolvedValue, format output.OutputFormat) error {
	if format != output.FormatTable {
		return output.WriteStructured(w, format, values)
	}
	tbl := output.NewTable("KEY", "VALUE", "SOURCE")
	for _, v := range values {
		tbl.Row(v.Key, v.Value, string(v.Source))
	}
	fmt.Fprintln(w, tbl.String())
	return nil
}

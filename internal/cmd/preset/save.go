package preset

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/cmdutil"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/preset"
)

// NewSaveCmd creates the preset save command.
func NewSaveCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		sf          cmdutil.StackFlags
		description string
	)

	c := &cobra.Command{
		Use:   "save <name>",
		Short: "Save a stack as a preset",
		Long: `Save the stack described by the flags as a named preset.

Examples:
  create-fs-app preset save api-first --monorepo nx --frontend react \
    --backend fastify-ts --database postgresql --orm drizzle -d "Nx + Fastify"`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			stack, err := sf.Stack(c)
			if err != nil {
				return cmdtypes.Fail(err)
			}
			p, err := gc.Presets().Save(args[0], stack, description)
			if err != nil {
				return cmdtypes.Fail(err)
			}
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Preset "+output.StyleNoun.Render(p.Name)+" saved"))
			return nil
		},
	}

	sf.AddTo(c)
	c.Flags().StringVarP(&description, "description", "d", "", "Preset description")

	return c
}

// NewDeleteCmd creates the preset delete command.
func NewDeleteCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			deleted, err := gc.Presets().Delete(args[0])
			if err != nil {
				return cmdtypes.Fail(err)
			}
			if !deleted {
				return cmdtypes.Fail(preset.NotFoundError(args[0]))
			}
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Preset "+output.StyleNoun.Render(args[0])+" deleted"))
			return nil
		},
	}
}

// Package preset provides the `create-fs-app preset` command group.
package preset

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/preset"
)

// NewPresetCmd creates the preset command group.
func NewPresetCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "preset",
		Short: "Manage configuration presets",
		Long: `Commands for listing, inspecting, saving and deleting configuration presets.

Presets are named stacks. Three are built in; your own presets are stored in
presets.json inside the presets directory (default ~/.create-fs-app/presets).`,
	}

	c.AddCommand(
		NewListCmd(gc),
		NewShowCmd(gc),
		NewSaveCmd(gc),
		NewDeleteCmd(gc),
	)

	return c
}

// NewListCmd creates the preset list command.
func NewListCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	format := output.FormatTable

	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List built-in and saved presets",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			store := gc.Presets()
			if format != output.FormatTable {
				return output.WriteStructured(c.OutOrStdout(), format, store.All())
			}
			writePresetList(c.OutOrStdout(), preset.Builtins(), store.List())
			return nil
		},
	}

	c.Flags().VarP(&format, "output", "o", "Output format: table, json, yaml")

	return c
}

func writePresetList(w io.Writer, builtins, user []preset.Preset) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleHeading.Render("Available Presets"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, output.StyleSummary.Render("Built-in Presets:"))
	writePresets(w, builtins)

	if len(user) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.StyleSummary.Render("Your Presets:"))
		writePresets(w, user)
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, output.FormatHint("Use: create-fs-app my-app --preset <name>"))
}

func writePresets(w io.Writer, presets []preset.Preset) {
	for _, p := range presets {
		fmt.Fprintln(w, "  "+output.StyleNoun.Render(p.Name))
		if p.Description != "" {
			fmt.Fprintln(w, "    "+output.StyleDim.Render(p.Description))
		}
	}
}

// NewShowCmd creates the preset show command.
func NewShowCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	format := output.FormatYAML

	c := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the stack stored in a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, ok := gc.Presets().Get(args[0])
			if !ok {
				return cmdtypes.Fail(preset.NotFoundError(args[0]))
			}
			if format == output.FormatTable {
				format = output.FormatYAML
			}
			return output.WriteStructured(c.OutOrStdout(), format, p)
		},
	}

	c.Flags().VarP(&format, "output", "o", "Output format: yaml, json")

	return c
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/health"
	"github.com/create-fs-app/cli/internal/output"
)

// errUnhealthy is returned when at least one health check fails.
var errUnhealthy = errors.New("health check failed")

// NewHealthCmd creates the health command.
func NewHealthCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	format := output.FormatTable

	c := &cobra.Command{
		Use:   "health [dir]",
		Short: "Run health checks on a generated project",
		Long: `Inspect a project directory for common setup problems: manifest, installed
dependencies, git repository, TypeScript and environment files, workspace
layout and scripts.

Arguments:
  dir    Project directory (default: current directory)

Exits with status 1 when any check fails.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			dir, err := healthDir(gc, args)
			if err != nil {
				return cmdtypes.Fail(err)
			}
			report := health.Run(dir)

			if format == output.FormatTable {
				writeHealthReport(c.OutOrStdout(), report)
			} else if err := output.WriteStructured(c.OutOrStdout(), format, report); err != nil {
				return cmdtypes.Fail(err)
			}

			if !report.Passed() {
				return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: errUnhealthy, Printed: true}
			}
			return nil
		},
	}

	c.Flags().VarP(&format, "output", "o", "Output format: table, json, yaml")

	return c
}

func healthDir(gc *cmdtypes.GlobalConfig, args []string) (string, error) {
	wd, err := gc.Env.WorkDir()
	if err != nil {
		return "", fmt.Errorf("determining working directory: %w", err)
	}
	if len(args) == 0 {
		return wd, nil
	}
	if filepath.IsAbs(args[0]) {
		return args[0], nil
	}
	return filepath.Join(wd, args[0]), nil
}

func writeHealthReport(w io.Writer, r health.Report) {
	fmt.Fprintln(w)
	for _, c := range r.Checks {
		status := output.StatusPassed
		if !c.Passed {
			status = output.StatusFailed
		}
		fmt.Fprintln(w, output.FormatStatusLine(status, c.Name))
		fmt.Fprint(w, output.FormatHint(c.Message))
		if !c.Passed && c.Suggestion != "" {
			fmt.Fprintln(w, "  "+output.StatusStyle(output.StatusWarning).Render(c.Suggestion))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleSummary.Render(
		fmt.Sprintf("Results: %d/%d checks passed", r.PassedCount(), len(r.Checks))))
	if r.Passed() {
		fmt.Fprintln(w, output.FormatCheckmark("Project is healthy!"))
	} else {
		fmt.Fprintln(w, output.FormatStatusLine(output.StatusWarning, "Some issues found. See suggestions above."))
	}
}

// Package cache provides the `create-fs-app cache` command group.
package cache

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/create-fs-app/cli/internal/cache"
	"github.com/create-fs-app/cli/internal/cmdtypes"
	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/retrieval"
)

// NewCacheCmd creates the cache command group.
func NewCacheCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "cache",
		Short: "Manage the template cache",
		Long: `Commands for inspecting, clearing and pre-populating the local template cache.

Templates are cached under the cache directory (default ~/.create-fs-app/cache)
so that repeated scaffolds of the same template do not clone again.`,
	}

	c.AddCommand(
		NewStatsCmd(gc),
		NewClearCmd(gc),
		NewWarmCmd(gc),
	)

	return c
}

// NewStatsCmd creates the cache stats command.
func NewStatsCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	format := output.FormatTable

	c := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			st, err := cache.New(gc.Resolved.CacheDir, nil).Stats()
			if err != nil {
				return cmdtypes.Fail(err)
			}
			if format != output.FormatTable {
				return output.WriteStructured(c.OutOrStdout(), format, st)
			}
			writeStats(c.OutOrStdout(), st, time.Now())
			return nil
		},
	}

	c.Flags().VarP(&format, "output", "o", "Output format: table, json, yaml")

	return c
}

func writeStats(w io.Writer, st cache.Stats, now time.Time) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleHeading.Render("Cache Statistics"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total templates: %d\n", st.TotalEntries)
	fmt.Fprintf(w, "Cache size: %s\n", humanize.Bytes(uint64(st.TotalSizeBytes)))

	if len(st.Entries) == 0 {
		return
	}
	fmt.Fprintln(w)
	tbl := output.NewTable("KEY", "BRANCH", "SIZE", "CACHED", "LAST USED")
	for _, e := range st.Entries {
		tbl.Row(
			e.Key,
			e.Branch,
			humanize.Bytes(uint64(e.SizeBytes)),
			humanize.RelTime(e.CachedAt, now, "ago", "from now"),
			humanize.RelTime(e.LastUsed, now, "ago", "from now"),
		)
	}
	fmt.Fprintln(w, tbl.String())
}

// NewClearCmd creates the cache clear command.
func NewClearCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached template",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if err := cache.New(gc.Resolved.CacheDir, nil).Clear(); err != nil {
				return cmdtypes.Fail(err)
			}
			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Cache cleared"))
			return nil
		},
	}
}

// NewWarmCmd creates the cache warm command.
func NewWarmCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var branch string

	c := &cobra.Command{
		Use:   "warm <template-key>",
		Short: "Download a template into the cache ahead of time",
		Long: `Clone a catalog template into the cache so the next scaffold of it needs no
network access. An existing entry is replaced.

Examples:
  create-fs-app cache warm turborepo-nextjs-nestjs-postgresql-prisma`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			entry, ok := gc.Env.Registry.Find(args[0])
			if !ok {
				return cmdtypes.Fail(oerrors.NewNotFoundError(
					fmt.Sprintf("template %q doesn't exist", args[0]),
					"",
					"Use 'create-fs-app list' to see available templates.",
				))
			}
			meta := entry.Metadata
			if branch != "" {
				meta.Branch = branch
			}

			git, err := gc.Git()
			if err != nil {
				return cmdtypes.Fail(err)
			}
			store := cache.New(gc.Resolved.CacheDir, git)

			defer output.RestoreCursor(c.OutOrStdout())
			var path string
			err = output.Spin(c.Context(), "Caching "+entry.Key+"...", func(ctx context.Context) error {
				var err error
				path, err = store.Store(ctx, meta)
				return err
			})
			if err != nil {
				return cmdtypes.Fail(&retrieval.Error{URL: meta.URL, Op: "cache", Err: err})
			}

			fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Cached "+output.StyleNoun.Render(entry.Key)+" at "+path))
			return nil
		},
	}

	c.Flags().StringVar(&branch, "branch", "", "Branch to cache (default: the template's branch)")

	return c
}

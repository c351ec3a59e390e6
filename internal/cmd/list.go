package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/create-fs-app/cli/internal/cmdtypes"
	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/templates"
)

const (
	// listFeatureLimit is the number of features shown per template in a table.
	listFeatureLimit = 3
	// listDescriptionWidth caps the description column.
	listDescriptionWidth = 60
)

// templateView is the structured form of a catalog entry.
type templateView struct {
	Key         string   `json:"key" yaml:"key"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	URL         string   `json:"url" yaml:"url"`
	Branch      string   `json:"branch" yaml:"branch"`
}

func newTemplateView(e templates.Entry) templateView {
	return templateView{
		Key:         e.Key,
		Description: e.Metadata.Description,
		Features:    e.Metadata.Features,
		URL:         e.Metadata.URL,
		Branch:      e.Metadata.BranchOrDefault(),
	}
}

// NewListCmd creates the list command.
func NewListCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		format = output.FormatTable
		search string
		stats  bool
	)

	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all available templates",
		Long: `List the template catalog grouped by monorepo framework.

Examples:
  # Show the catalog
  create-fs-app list

  # Only templates mentioning prisma
  create-fs-app list --search prisma

  # Count templates per monorepo, frontend and backend
  create-fs-app list --stats

  # Machine-readable output
  create-fs-app list -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if stats {
				return writeTemplateStats(c.OutOrStdout(), gc.Env.Registry.Stats(), format)
			}
			entries := gc.Env.Registry.List()
			if search != "" {
				entries = gc.Env.Registry.Search(search)
			}
			return writeTemplateList(c.OutOrStdout(), entries, format)
		},
	}

	c.Flags().VarP(&format, "output", "o", "Output format: table, json, yaml")
	c.Flags().StringVar(&search, "search", "", "Only show templates whose key, description or features match")
	c.Flags().BoolVar(&stats, "stats", false, "Show catalog statistics instead of the templates")
	c.MarkFlagsMutuallyExclusive("search", "stats")

	return c
}

func writeTemplateList(w io.Writer, entries []templates.Entry, format output.OutputFormat) error {
	if format != output.FormatTable {
		views := make([]templateView, len(entries))
		for i, e := range entries {
			views[i] = newTemplateView(e)
		}
		return output.WriteStructured(w, format, views)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, output.FormatStatusLine(output.StatusWarning, "No templates found"))
		return nil
	}

	// Group by monorepo in catalog order.
	var order []string
	groups := make(map[string][]templates.Entry)
	for _, e := range entries {
		m := templates.Monorepo(e.Key)
		if _, ok := groups[m]; !ok {
			order = append(order, m)
		}
		groups[m] = append(groups[m], e)
	}

	title := cases.Title(language.English)
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleHeading.Render("Available Templates"))
	fmt.Fprintln(w)
	for _, m := range order {
		fmt.Fprintln(w, output.StyleSummary.Render(title.String(m)))
		tbl := output.NewTable("TEMPLATE KEY", "DESCRIPTION", "FEATURES").
			Truncate(1, listDescriptionWidth)
		for _, e := range groups[m] {
			features := e.Metadata.Features
			if len(features) > listFeatureLimit {
				features = features[:listFeatureLimit]
			}
			tbl.Row(e.Key, e.Metadata.Description, strings.Join(features, ", "))
		}
		fmt.Fprintln(w, tbl.String())
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, output.FormatHint(
		"Usage: create-fs-app <project-name> --template <key>",
		"or run create-fs-app for interactive mode",
	))
	return nil
}

func writeTemplateStats(w io.Writer, st templates.Stats, format output.OutputFormat) error {
	if format != output.FormatTable {
		return output.WriteStructured(w, format, st)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleHeading.Render("Template Statistics"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total templates: %d\n", st.Total)

	groups := []struct {
		title  string
		counts map[string]int
	}{
		{"By monorepo", st.ByMonorepo},
		{"By frontend", st.ByFrontend},
		{"By backend", st.ByBackend},
	}
	for _, g := range groups {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.StyleSummary.Render(g.title+":"))
		names := make([]string, 0, len(g.counts))
		for name := range g.counts {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %d\n", name, g.counts[name])
		}
	}
	return nil
}

// NewInfoCmd creates the info command.
func NewInfoCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	format := output.FormatTable

	c := &cobra.Command{
		Use:   "info <template>",
		Short: "Show detailed information about a template",
		Long: `Show the description, features and repository of a template.

The name may be a full template key or any part of one; the first key
containing it is used.

Examples:
  create-fs-app info turborepo-nextjs-nestjs-postgresql-prisma
  create-fs-app info nx-react`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			entry, ok := gc.Env.Registry.Find(args[0])
			if !ok {
				return cmdtypes.Fail(oerrors.NewNotFoundError(
					fmt.Sprintf("%q doesn't exist", args[0]),
					"",
					"Use 'create-fs-app list' to see available templates.",
				))
			}
			return writeTemplateInfo(c.OutOrStdout(), entry, format)
		},
	}

	c.Flags().VarP(&format, "output", "o", "Output format: table, json, yaml")

	return c
}

func writeTemplateInfo(w io.Writer, e templates.Entry, format output.OutputFormat) error {
	if format != output.FormatTable {
		return output.WriteStructured(w, format, newTemplateView(e))
	}

	var body strings.Builder
	body.WriteString(output.StyleNoun.Render(e.Key))
	body.WriteString("\n\n")
	body.WriteString(output.StyleDim.Render("Description:"))
	body.WriteString("\n" + e.Metadata.Description + "\n\n")
	body.WriteString(output.StyleDim.Render("Features:"))
	body.WriteString("\n")
	for _, f := range e.Metadata.Features {
		body.WriteString(output.FormatCheckmark(f) + "\n")
	}
	body.WriteString("\n")
	body.WriteString(output.StyleDim.Render("Repository:"))
	body.WriteString("\n" + e.Metadata.URL)

	fmt.Fprintln(w, output.Box("Template Info", body.String(), output.ColorCyan))
	fmt.Fprintln(w, output.Box("Usage", "create-fs-app my-app --template "+e.Key, output.ColorBlue))
	return nil
}

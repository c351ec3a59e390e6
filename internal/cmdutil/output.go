package cmdutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/project"
	"github.com/create-fs-app/cli/internal/scaffold"
	"github.com/create-fs-app/cli/internal/templates"
)

// ContributeURL is where users can propose a missing stack combination.
const ContributeURL = templates.BaseURL

// PrintTemplateNotFound reports a stack with no catalog template and the
// closest alternatives. It is not an error: the caller exits successfully.
func PrintTemplateNotFound(w io.Writer, nf *scaffold.TemplateNotFoundError) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.FormatStatusLine(output.StatusWarning,
		"No exact template match found for your configuration."))
	fmt.Fprintln(w, output.FormatHint(strings.Split(nf.Error(), "\n")...))

	if len(nf.Suggestions) > 0 {
		fmt.Fprintln(w, output.StyleHeading.Render("Available similar templates:"))
		for i, s := range nf.Suggestions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, output.StyleNoun.Render(s.Key))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, output.FormatHint(
		"Tip: You can contribute this template combination to our repository!",
		"Visit: "+ContributeURL,
	))
}

// NextSteps returns the commands a user runs after creation.
func NextSteps(name string, pm project.PackageManager, installed bool) []string {
	run := fmt.Sprintf("%s run dev", pm)
	if !installed {
		run = fmt.Sprintf("%s install", pm)
	}
	return []string{"cd " + name, run}
}

// PrintSuccess prints the completion box for a generated project.
func PrintSuccess(w io.Writer, name string, pm project.PackageManager, installed bool) {
	var body strings.Builder
	fmt.Fprintf(&body, "%s is ready!\n\n", output.StyleNoun.Render(name))
	body.WriteString(output.StyleSummary.Render("Next steps:"))
	body.WriteString("\n")
	for i, step := range NextSteps(name, pm, installed) {
		fmt.Fprintf(&body, "  %d. %s\n", i+1, output.StyleNoun.Render(step))
	}
	body.WriteString("\n")
	body.WriteString(output.StyleDim.Render("README.md     project overview"))
	body.WriteString("\n")
	body.WriteString(output.StyleDim.Render(".env.example  environment setup"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.Box("Success", body.String(), output.ColorGreen))
}

// PrintStack prints the configuration a project will be generated from.
func PrintStack(w io.Writer, cfg project.ProjectConfig) {
	b := cfg.Apps.Backend
	rows := [][2]string{
		{"Project", cfg.Name},
		{"Monorepo", string(cfg.Monorepo)},
		{"Frontend", string(cfg.Apps.Frontend.Framework)},
		{"Backend", string(b.Framework)},
		{"Database", string(b.Database)},
		{"ORM", b.ORMOrNone()},
		{"Package Manager", string(cfg.PackageManager)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "  %s %s\n", output.StyleDim.Render(r[0]+":"), r[1])
	}
	fmt.Fprintln(w)
}

// layoutSkip names directories left out of ProjectLayout.
var layoutSkip = []string{".git", "node_modules"}

// ProjectLayout lists the top-level entries of dir and the entries of its
// apps directory as slash-separated paths. Directories end in "/".
func ProjectLayout(dir string) ([]string, error) {
	top, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range top {
		if slices.Contains(layoutSkip, e.Name()) {
			continue
		}
		if !e.IsDir() {
			paths = append(paths, e.Name())
			continue
		}
		paths = append(paths, e.Name()+"/")
		if e.Name() != "apps" {
			continue
		}
		apps, err := os.ReadDir(filepath.Join(dir, "apps"))
		if err != nil {
			return nil, err
		}
		for _, a := range apps {
			if a.IsDir() {
				paths = append(paths, "apps/"+a.Name()+"/")
			}
		}
	}
	return paths, nil
}

// PrintLayout prints the generated project layout as a tree. Unreadable
// directories print nothing.
func PrintLayout(w io.Writer, name, dir string) {
	paths, err := ProjectLayout(dir)
	if err != nil {
		output.Debug("cannot list project layout", "dir", dir, "err", err)
		return
	}
	if tree := output.RenderTree(name, paths); tree != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, tree)
	}
}

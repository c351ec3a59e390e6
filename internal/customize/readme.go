package customize

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/create-fs-app/cli/internal/project"
)

const readmeFile = "README.md"

// AugmentReadme prepends a heading and a tech stack summary to README.md
// unless its first line is already "# <name>".
func AugmentReadme(dir string, cfg project.ProjectConfig) error {
	path := filepath.Join(dir, readmeFile)
	data, ok, err := readOptional(path)
	if err != nil || !ok {
		return err
	}

	content := string(data)
	heading := "# " + cfg.Name
	first, _, _ := strings.Cut(content, "\n")
	if strings.TrimRight(first, " \r") == heading {
		return nil
	}

	return writePreservingMode(path, []byte(ReadmeHeader(cfg)+content))
}

// ReadmeHeader renders the block placed at the top of the README.
func ReadmeHeader(cfg project.ProjectConfig) string {
	orm := "None"
	if cfg.Apps.Backend.ORM != "" {
		orm = string(cfg.Apps.Backend.ORM)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)
	b.WriteString("## Tech Stack\n\n")
	fmt.Fprintf(&b, "- **Monorepo**: %s\n", cfg.Monorepo)
	fmt.Fprintf(&b, "- **Frontend**: %s with %s\n", cfg.Apps.Frontend.Framework, cfg.Apps.Frontend.Styling)
	fmt.Fprintf(&b, "- **Backend**: %s\n", cfg.Apps.Backend.Framework)
	fmt.Fprintf(&b, "- **Database**: %s\n", cfg.Apps.Backend.Database)
	fmt.Fprintf(&b, "- **ORM**: %s\n", orm)
	fmt.Fprintf(&b, "- **Package Manager**: %s\n\n", cfg.PackageManager)
	return b.String()
}

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/fsutil"
	"github.com/create-fs-app/cli/internal/project"
	"github.com/create-fs-app/cli/internal/templates"
)

// TemplateNotFoundError reports a stack with no catalog template. It is a
// guided dead end rather than a crash: callers print the suggestions and
// exit successfully.
type TemplateNotFoundError struct {
	Key         string
	Stack       project.Stack
	Suggestions []templates.Entry
}

func (e *TemplateNotFoundError) Error() string {
	b := e.Stack.Apps.Backend
	var sb strings.Builder
	sb.WriteString("template not found for your configuration:\n")
	fmt.Fprintf(&sb, "  - Monorepo: %s\n", e.Stack.Monorepo)
	fmt.Fprintf(&sb, "  - Frontend: %s\n", e.Stack.Apps.Frontend.Framework)
	fmt.Fprintf(&sb, "  - Backend: %s\n", b.Framework)
	fmt.Fprintf(&sb, "  - Database: %s\n", b.Database)
	fmt.Fprintf(&sb, "  - ORM: %s\n", b.ORMOrNone())
	sb.WriteString("This combination doesn't have a pre-built template yet.")
	return sb.String()
}

// Is classifies the error as oerrors.ErrNotFound.
func (e *TemplateNotFoundError) Is(target error) bool {
	return target == oerrors.ErrNotFound
}

// ValidateProjectDirectory fails when dir already exists. It must run before
// anything is written.
func ValidateProjectDirectory(dir string) error {
	exists, err := fsutil.Exists(dir)
	if err != nil {
		if os.IsPermission(err) {
			return fmt.Errorf("checking %s: %w", dir, oerrors.ErrPermission)
		}
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if exists {
		return oerrors.NewAlreadyExistsError(
			fmt.Sprintf("Directory %q already exists.", filepath.Base(dir)),
			dir,
			"Choose a different name or remove the existing directory.",
		)
	}
	return nil
}

// Availability is the result of CheckTemplateAvailability.
type Availability struct {
	Available   bool
	Template    templates.Entry
	Suggestions []templates.Entry
}

// CheckTemplateAvailability resolves s without side effects so that a
// caller can report a missing template before starting any work.
func CheckTemplateAvailability(reg *templates.Registry, s project.Stack) Availability {
	if e, ok := reg.Resolve(s); ok {
		return Availability{Available: true, Template: e}
	}
	return Availability{Suggestions: reg.Suggest(s)}
}

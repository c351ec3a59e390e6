package project

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/create-fs-app/cli/internal/errors"
)

// maxNameLength mirrors the npm package name limit.
const maxNameLength = 214

var (
	namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	reservedNames = []string{"node_modules", "package.json", "package-lock.json", "npm", "node"}
)

// ValidateName checks that name is usable as a directory and package name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return oerrors.NewValidationError("project name cannot be empty", "name",
			"Usage: create-fs-app <project-name> [options]")
	}
	if !namePattern.MatchString(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("project name can only contain letters, numbers, hyphens, and underscores; invalid name: %q", name),
			"name", "")
	}
	if len(name) >= maxNameLength {
		return oerrors.NewValidationError(
			fmt.Sprintf("project name must be less than %d characters", maxNameLength), "name", "")
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return oerrors.NewValidationError("project name cannot start with . or _", "name", "")
	}
	for _, r := range reservedNames {
		if strings.EqualFold(name, r) {
			return oerrors.NewValidationError(fmt.Sprintf("%q is a reserved name", name), "name",
				"Choose a different project name.")
		}
	}
	return nil
}

// Validate checks every enum field of the stack against its closed set.
// The ORM and testing fields may be empty.
func (s Stack) Validate() error {
	checks := []error{
		check("monorepo", "monorepo framework", s.Monorepo, Monorepos(), false),
		check("packageManager", "package manager", s.PackageManager, PackageManagers(), false),
		check("apps.frontend.framework", "frontend framework", s.Apps.Frontend.Framework, Frontends(), false),
		check("apps.frontend.styling", "styling", s.Apps.Frontend.Styling, Stylings(), false),
		check("apps.frontend.testing", "frontend testing framework", s.Apps.Frontend.Testing, FrontendTestings(), true),
		check("apps.backend.framework", "backend framework", s.Apps.Backend.Framework, Backends(), false),
		check("apps.backend.database", "database", s.Apps.Backend.Database, Databases(), false),
		check("apps.backend.orm", "ORM", s.Apps.Backend.ORM, ORMs(), true),
		check("apps.backend.testing", "backend testing framework", s.Apps.Backend.Testing, BackendTestings(), true),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the project name and the stack.
func (c ProjectConfig) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	return c.Stack.Validate()
}

func check[T ~string](field, label string, value T, valid []T, optional bool) error {
	if value == "" && optional {
		return nil
	}
	for _, v := range valid {
		if v == value {
			return nil
		}
	}
	return invalidValue(field, label, string(value), valid)
}

func invalidValue[T ~string](field, label, value string, valid []T) error {
	return oerrors.NewInvalidValueError(field, label, value, Join(valid))
}

// Join renders enum values as a comma-separated list.
func Join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

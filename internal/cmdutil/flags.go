// Package cmdutil provides shared command utilities. It centralizes the stack
// flag group used by create and preset save, and the output helpers that
// report scaffold outcomes.
package cmdutil

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/project"
)

// enumValue is a pflag.Value restricted to a closed set. Input is matched
// case-insensitively and stored in its canonical form.
type enumValue[T ~string] struct {
	target  *T
	parse   func(string) (T, error)
	options string
	typ     string
}

func newEnum[T ~string](target *T, typ string, valid []T, parse func(string) (T, error)) *enumValue[T] {
	return &enumValue[T]{target: target, parse: parse, options: project.Join(valid), typ: typ}
}

func (v *enumValue[T]) String() string {
	if v.target == nil {
		return ""
	}
	return string(*v.target)
}

func (v *enumValue[T]) Set(s string) error {
	parsed, err := v.parse(s)
	if err != nil {
		return fmt.Errorf("valid options: %s", v.options)
	}
	*v.target = parsed
	return nil
}

func (v *enumValue[T]) Type() string {
	return v.typ
}

// requiredStackFlags must be given together.
var requiredStackFlags = []string{"monorepo", "frontend", "backend", "database"}

// stackFlags is every flag registered by StackFlags.
var stackFlags = []string{
	"monorepo", "frontend", "backend", "database", "orm",
	"package-manager", "styling", "linting", "docker",
}

// StackFlags holds the flags that describe a project stack
// (create, preset save).
type StackFlags struct {
	Monorepo       project.Monorepo
	Frontend       project.Frontend
	Backend        project.Backend
	Database       project.Database
	ORM            project.ORM
	PackageManager project.PackageManager
	Styling        project.Styling
	Linting        bool
	Docker         bool
}

// AddTo registers the stack flags on the given cobra command.
func (f *StackFlags) AddTo(cmd *cobra.Command) {
	f.PackageManager = project.NPM
	f.Styling = project.Tailwind

	fl := cmd.Flags()
	fl.Var(newEnum(&f.Monorepo, "monorepo", project.Monorepos(), project.ParseMonorepo), "monorepo",
		"Monorepo framework: "+project.Join(project.Monorepos()))
	fl.Var(newEnum(&f.Frontend, "framework", project.Frontends(), project.ParseFrontend), "frontend",
		"Frontend framework: "+project.Join(project.Frontends()))
	fl.Var(newEnum(&f.Backend, "framework", project.Backends(), project.ParseBackend), "backend",
		"Backend framework: "+project.Join(project.Backends()))
	fl.Var(newEnum(&f.Database, "database", project.Databases(), project.ParseDatabase), "database",
		"Database: "+project.Join(project.Databases()))
	fl.Var(newEnum(&f.ORM, "orm", append(project.ORMs(), "none"), project.ParseORM), "orm",
		"ORM: "+project.Join(project.ORMs())+", none")
	fl.Var(newEnum(&f.PackageManager, "manager", project.PackageManagers(), project.ParsePackageManager), "package-manager",
		"Package manager: "+project.Join(project.PackageManagers()))
	fl.Var(newEnum(&f.Styling, "styling", project.Stylings(), project.ParseStyling), "styling",
		"Styling solution: "+project.Join(project.Stylings()))
	fl.BoolVar(&f.Linting, "linting", true, "Enable ESLint and Prettier")
	fl.BoolVar(&f.Docker, "docker", true, "Include Docker configuration")
}

// Changed reports whether any stack flag was given on the command line.
func (f *StackFlags) Changed(cmd *cobra.Command) bool {
	for _, name := range stackFlags {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// Stack builds and validates the stack described by the flags. The
// monorepo, frontend, backend and database flags are required.
func (f *StackFlags) Stack(cmd *cobra.Command) (project.Stack, error) {
	var missing []string
	for _, name := range requiredStackFlags {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return project.Stack{}, oerrors.NewValidationError(
			"missing required flags: "+strings.Join(missing, ", "),
			"",
			"--monorepo, --frontend, --backend and --database must be given together.",
		)
	}

	s := project.Stack{
		Monorepo:       f.Monorepo,
		PackageManager: f.PackageManager,
		Apps: project.Apps{
			Frontend: project.FrontendApp{
				Framework: f.Frontend,
				Styling:   f.Styling,
				Linting:   f.Linting,
			},
			Backend: project.BackendApp{
				Framework: f.Backend,
				Database:  f.Database,
				ORM:       f.ORM,
				Docker:    f.Docker,
			},
		},
	}
	if err := s.Validate(); err != nil {
		return project.Stack{}, err
	}
	return s, nil
}

// ProjectName returns the first argument, or "" when none was given.
func ProjectName(args []string) string {
	if len(args) > 0 {
		return strings.TrimSpace(args[0])
	}
	return ""
}

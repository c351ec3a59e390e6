package prompt

import (
	"github.com/create-fs-app/cli/internal/project"
)

// DefaultProjectName is offered when no name was given on the command line.
const DefaultProjectName = "my-fs-app"

// Answer keys of the project questions.
const (
	KeyName           = "name"
	KeyMonorepo       = "monorepo"
	KeyPackageManager = "packageManager"
	KeyFrontend       = "frontendFramework"
	KeyStyling        = "styling"
	KeyLinting        = "linting"
	KeyBackend        = "backendFramework"
	KeyDatabase       = "database"
	KeyORM            = "orm"
	KeyDocker         = "docker"
)

const noORM = "none"

// ProjectQuestions returns the interactive configuration questions. The name
// question is included only when askName is set.
func ProjectQuestions(askName bool) []Question {
	var qs []Question
	if askName {
		qs = append(qs, Question{
			Name:     KeyName,
			Message:  "What is your project named?",
			Kind:     KindText,
			Default:  DefaultProjectName,
			Validate: project.ValidateName,
		})
	}
	return append(qs,
		selectOf(KeyMonorepo, "Select a monorepo framework:", project.Monorepos()),
		selectOf(KeyPackageManager, "Select a package manager:", project.PackageManagers()),
		selectOf(KeyFrontend, "Select a frontend framework:", project.Frontends()),
		selectOf(KeyStyling, "Select a styling solution:", project.Stylings()),
		Question{Name: KeyLinting, Message: "Enable ESLint and Prettier?", Kind: KindConfirm, Default: "true"},
		selectOf(KeyBackend, "Select a backend framework:", project.Backends()),
		selectOf(KeyDatabase, "Select a database:", project.Databases()),
		Question{
			Name:    KeyORM,
			Message: "Select an ORM:",
			Kind:    KindSelect,
			Choices: append(values(project.ORMs()), noORM),
		},
		Question{Name: KeyDocker, Message: "Include Docker configuration?", Kind: KindConfirm, Default: "true"},
	)
}

func selectOf[T ~string](name, message string, choices []T) Question {
	return Question{Name: name, Message: message, Kind: KindSelect, Choices: values(choices)}
}

func values[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

// ConfigFromAnswers builds and validates a project configuration. A
// non-empty name takes precedence over the name answer.
func ConfigFromAnswers(name string, a Answers) (project.ProjectConfig, error) {
	if name == "" {
		name = a.String(KeyName)
	}

	var (
		cfg = project.ProjectConfig{Name: name}
		err error
	)
	if cfg.Monorepo, err = project.ParseMonorepo(a.String(KeyMonorepo)); err != nil {
		return cfg, err
	}
	if cfg.PackageManager, err = project.ParsePackageManager(a.String(KeyPackageManager)); err != nil {
		return cfg, err
	}
	if cfg.Apps.Frontend.Framework, err = project.ParseFrontend(a.String(KeyFrontend)); err != nil {
		return cfg, err
	}
	if cfg.Apps.Frontend.Styling, err = project.ParseStyling(a.String(KeyStyling)); err != nil {
		return cfg, err
	}
	if cfg.Apps.Backend.Framework, err = project.ParseBackend(a.String(KeyBackend)); err != nil {
		return cfg, err
	}
	if cfg.Apps.Backend.Database, err = project.ParseDatabase(a.String(KeyDatabase)); err != nil {
		return cfg, err
	}
	if cfg.Apps.Backend.ORM, err = project.ParseORM(a.String(KeyORM)); err != nil {
		return cfg, err
	}
	cfg.Apps.Frontend.Linting = a.Bool(KeyLinting)
	cfg.Apps.Backend.Docker = a.Bool(KeyDocker)

	return cfg, cfg.Validate()
}

// Package preset stores named stack configurations. Three presets are built
// in; users can save their own to a JSON file.
package preset

import (
	"slices"
	"time"

	"github.com/create-fs-app/cli/internal/project"
)

// Preset is a named stack. It carries no project name; one is attached when
// a project is created from it.
type Preset struct {
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Config      project.Stack `json:"config" yaml:"config"`
	CreatedAt   time.Time     `json:"createdAt" yaml:"createdAt"`
	LastUsed    *time.Time    `json:"lastUsed,omitempty" yaml:"lastUsed,omitempty"`
	BuiltIn     bool          `json:"-" yaml:"builtIn"`
}

var builtins = []Preset{
	{
		Name:        "saas-starter",
		Description: "Modern SaaS application with Next.js, NestJS, PostgreSQL, and Prisma",
		Config: project.Stack{
			Monorepo:       project.Turborepo,
			PackageManager: project.PNPM,
			Apps: project.Apps{
				Frontend: project.FrontendApp{Framework: project.NextJS, Styling: project.Tailwind, Linting: true},
				Backend: project.BackendApp{
					Framework: project.NestJS,
					Database:  project.PostgreSQL,
					ORM:       project.Prisma,
					Docker:    true,
				},
			},
		},
	},
	{
		Name:        "ecommerce",
		Description: "E-commerce platform with React, Express, and MongoDB",
		Config: project.Stack{
			Monorepo:       project.Turborepo,
			PackageManager: project.NPM,
			Apps: project.Apps{
				Frontend: project.FrontendApp{Framework: project.React, Styling: project.Tailwind, Linting: true},
				Backend: project.BackendApp{
					Framework: project.Express,
					Database:  project.MongoDB,
					ORM:       project.Mongoose,
					Docker:    true,
				},
			},
		},
	},
	{
		Name:        "minimal",
		Description: "Minimal setup with React, Express, and PostgreSQL",
		Config: project.Stack{
			Monorepo:       project.Turborepo,
			PackageManager: project.NPM,
			Apps: project.Apps{
				Frontend: project.FrontendApp{Framework: project.React, Styling: project.CSS},
				Backend:  project.BackendApp{Framework: project.Express, Database: project.PostgreSQL},
			},
		},
	},
}

// Builtins returns the built-in presets in display order.
func Builtins() []Preset {
	out := slices.Clone(builtins)
	for i := range out {
		out[i].BuiltIn = true
	}
	return out
}

// Builtin returns the built-in preset called name.
func Builtin(name string) (Preset, bool) {
	for _, p := range Builtins() {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// ProjectConfig attaches a project name to the preset's stack.
func (p Preset) ProjectConfig(name string) project.ProjectConfig {
	return p.Config.WithName(name)
}

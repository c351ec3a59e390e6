// Package project defines the validated configuration describing a requested
// full-stack project: monorepo tool, frontend and backend apps, database, ORM
// and package manager.
package project

// Monorepo is a monorepo framework.
type Monorepo string

const (
	Turborepo Monorepo = "turborepo"
	Nx        Monorepo = "nx"
	Lerna     Monorepo = "lerna"
)

// Frontend is a frontend framework.
type Frontend string

const (
	React   Frontend = "react"
	NextJS  Frontend = "next.js"
	Vue     Frontend = "vue"
	Nuxt    Frontend = "nuxt"
	Angular Frontend = "angular"
)

// Backend is a backend framework.
type Backend string

const (
	Express   Backend = "express"
	NestJS    Backend = "nest.js"
	FastifyTS Backend = "fastify-ts"
	Koa       Backend = "koa"
)

// Database is a database engine.
type Database string

const (
	MongoDB    Database = "mongodb"
	PostgreSQL Database = "postgresql"
	MySQL      Database = "mysql"
	SQLite     Database = "sqlite"
)

// ORM is an object-relational mapper. The zero value means no ORM.
type ORM string

const (
	Prisma   ORM = "prisma"
	TypeORM  ORM = "typeorm"
	Mongoose ORM = "mongoose"
	Drizzle  ORM = "drizzle"
)

// PackageManager is a JavaScript package manager.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	Yarn PackageManager = "yarn"
	PNPM PackageManager = "pnpm"
)

// Styling is a frontend styling solution.
type Styling string

const (
	CSS              Styling = "css"
	SCSS             Styling = "scss"
	Tailwind         Styling = "tailwind"
	StyledComponents Styling = "styled-components"
)

// FrontendTesting is an optional frontend test framework.
type FrontendTesting string

const (
	FrontendJest    FrontendTesting = "jest"
	FrontendVitest  FrontendTesting = "vitest"
	FrontendCypress FrontendTesting = "cypress"
)

// BackendTesting is an optional backend test framework.
type BackendTesting string

const (
	BackendJest  BackendTesting = "jest"
	BackendMocha BackendTesting = "mocha"
)

// Monorepos returns all monorepo frameworks in display order.
func Monorepos() []Monorepo { return []Monorepo{Turborepo, Nx, Lerna} }

// Frontends returns all frontend frameworks in display order.
func Frontends() []Frontend { return []Frontend{React, NextJS, Vue, Nuxt, Angular} }

// Backends returns all backend frameworks in display order.
func Backends() []Backend { return []Backend{Express, NestJS, FastifyTS, Koa} }

// Databases returns all databases in display order.
func Databases() []Database { return []Database{MongoDB, PostgreSQL, MySQL, SQLite} }

// ORMs returns all ORMs in display order.
func ORMs() []ORM { return []ORM{Prisma, TypeORM, Mongoose, Drizzle} }

// PackageManagers returns all package managers in display order.
func PackageManagers() []PackageManager { return []PackageManager{NPM, Yarn, PNPM} }

// Stylings returns all styling solutions in display order.
func Stylings() []Styling { return []Styling{CSS, SCSS, Tailwind, StyledComponents} }

// FrontendTestings returns all frontend test frameworks.
func FrontendTestings() []FrontendTesting {
	return []FrontendTesting{FrontendJest, FrontendVitest, FrontendCypress}
}

// BackendTestings returns all backend test frameworks.
func BackendTestings() []BackendTesting { return []BackendTesting{BackendJest, BackendMocha} }

// FrontendApp describes the frontend application.
type FrontendApp struct {
	Framework Frontend        `json:"framework" yaml:"framework"`
	Styling   Styling         `json:"styling" yaml:"styling"`
	Linting   bool            `json:"linting" yaml:"linting"`
	Testing   FrontendTesting `json:"testing,omitempty" yaml:"testing,omitempty"`
}

// BackendApp describes the backend application.
type BackendApp struct {
	Framework Backend        `json:"framework" yaml:"framework"`
	Database  Database       `json:"database" yaml:"database"`
	ORM       ORM            `json:"orm,omitempty" yaml:"orm,omitempty"`
	Docker    bool           `json:"docker" yaml:"docker"`
	Testing   BackendTesting `json:"testing,omitempty" yaml:"testing,omitempty"`
}

// Apps groups the frontend and backend applications.
type Apps struct {
	Frontend FrontendApp `json:"frontend" yaml:"frontend"`
	Backend  BackendApp  `json:"backend" yaml:"backend"`
}

// Stack is a project configuration without the project name. Presets store
// stacks; a name is attached when a project is created.
type Stack struct {
	Monorepo       Monorepo       `json:"monorepo" yaml:"monorepo"`
	PackageManager PackageManager `json:"packageManager" yaml:"packageManager"`
	Apps           Apps           `json:"apps" yaml:"apps"`
}

// ProjectConfig is the validated user intent. It is passed by value and not
// mutated after validation.
type ProjectConfig struct {
	Name  string `json:"name" yaml:"name"`
	Stack `yaml:",inline"`
}

// WithName returns a ProjectConfig for the stack with the given name.
func (s Stack) WithName(name string) ProjectConfig {
	return ProjectConfig{Name: name, Stack: s}
}

// ORMOrNone returns the ORM, or "none" when no ORM is selected.
func (b BackendApp) ORMOrNone() string {
	if b.ORM == "" {
		return "none"
	}
	return string(b.ORM)
}

// DefaultStack returns the stack used when no explicit stack is requested,
// for example with a custom template URL.
func DefaultStack() Stack {
	return Stack{
		Monorepo:       Turborepo,
		PackageManager: NPM,
		Apps: Apps{
			Frontend: FrontendApp{
				Framework: React,
				Styling:   Tailwind,
				Linting:   true,
			},
			Backend: BackendApp{
				Framework: Express,
				Database:  PostgreSQL,
				Docker:    true,
			},
		},
	}
}

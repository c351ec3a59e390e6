// Package health inspects a generated project directory and reports common
// setup problems.
package health

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/create-fs-app/cli/internal/fsutil"
)

// Check is the outcome of one inspection.
type Check struct {
	Name       string `json:"name" yaml:"name"`
	Passed     bool   `json:"passed" yaml:"passed"`
	Message    string `json:"message" yaml:"message"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Report collects every check run against Dir.
type Report struct {
	Dir    string  `json:"dir" yaml:"dir"`
	Checks []Check `json:"checks" yaml:"checks"`
}

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	return r.PassedCount() == len(r.Checks)
}

// PassedCount returns the number of passing checks.
func (r Report) PassedCount() int {
	n := 0
	for _, c := range r.Checks {
		if c.Passed {
			n++
		}
	}
	return n
}

// manifest is the subset of package.json the checks look at.
type manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// project is the state shared by the checks.
type project struct {
	dir         string
	manifest    *manifest
	manifestErr error
}

func (p project) path(elem ...string) string {
	return filepath.Join(append([]string{p.dir}, elem...)...)
}

var checks = []func(project) Check{
	checkManifest,
	checkNodeModules,
	checkGitRepo,
	checkTSConfig,
	checkEnvFiles,
	checkLayout,
	checkDependencies,
	checkScripts,
}

// Run inspects dir. It never fails: unreadable files turn into failed
// checks.
func Run(dir string) Report {
	p := project{dir: dir}
	data, err := os.ReadFile(p.path("package.json"))
	if err == nil {
		m := &manifest{}
		if err = json.Unmarshal(data, m); err == nil {
			p.manifest = m
		}
	}
	p.manifestErr = err

	report := Report{Dir: dir, Checks: make([]Check, 0, len(checks))}
	for _, check := range checks {
		report.Checks = append(report.Checks, check(p))
	}
	return report
}

func checkManifest(p project) Check {
	c := Check{Name: "package.json"}
	if p.manifestErr != nil {
		c.Message = "package.json not found or invalid"
		c.Suggestion = "Make sure you are in a valid Node.js project directory"
		return c
	}
	c.Passed = true
	c.Message = "Valid package.json found"
	return c
}

func checkNodeModules(p project) Check {
	c := Check{Name: "Dependencies"}
	if !fsutil.IsDir(p.path("node_modules")) {
		c.Message = "node_modules not found"
		c.Suggestion = "Run npm install (or yarn/pnpm install) to install dependencies"
		return c
	}
	c.Passed = true
	c.Message = "node_modules directory exists"
	return c
}

func checkGitRepo(p project) Check {
	c := Check{Name: "Git Repository"}
	if ok, _ := fsutil.Exists(p.path(".git")); !ok {
		c.Message = "Not a git repository"
		c.Suggestion = `Run "git init" to initialize a git repository`
		return c
	}
	c.Passed = true
	c.Message = "Git repository initialized"
	return c
}

// checkTSConfig accepts comments and trailing commas, as the TypeScript
// compiler does.
func checkTSConfig(p project) Check {
	c := Check{Name: "TypeScript Configuration"}
	data, err := os.ReadFile(p.path("tsconfig.json"))
	if err != nil || !json.Valid(jsonc.ToJSON(data)) {
		c.Message = "tsconfig.json not found or invalid"
		c.Suggestion = "Create a tsconfig.json file for TypeScript configuration"
		return c
	}
	c.Passed = true
	c.Message = "Valid tsconfig.json found"
	return c
}

func checkEnvFiles(p project) Check {
	c := Check{Name: "Environment Files"}
	if ok, _ := fsutil.Exists(p.path("apps", "backend", ".env.example")); !ok {
		c.Message = "Environment configuration files not found"
		c.Suggestion = "Create .env.example and .env files in apps/backend/"
		return c
	}
	if ok, _ := fsutil.Exists(p.path("apps", "backend", ".env")); !ok {
		c.Message = ".env.example found but .env is missing"
		c.Suggestion = "Copy .env.example to .env and configure your environment variables"
		return c
	}
	c.Passed = true
	c.Message = ".env and .env.example found"
	return c
}

func checkLayout(p project) Check {
	c := Check{Name: "Monorepo Structure"}
	if !fsutil.IsDir(p.path("apps", "frontend")) || !fsutil.IsDir(p.path("apps", "backend")) {
		c.Message = "Expected monorepo structure not found"
		c.Suggestion = "Ensure apps/frontend and apps/backend directories exist"
		return c
	}
	c.Passed = true
	c.Message = "Valid monorepo structure (apps/frontend, apps/backend)"
	return c
}

func checkDependencies(p project) Check {
	c := Check{Name: "Dependencies Check"}
	switch {
	case p.manifest == nil:
		c.Message = "Could not check dependencies"
		c.Suggestion = "Verify package.json is valid"
	case p.manifest.Dependencies == nil && p.manifest.DevDependencies == nil:
		c.Message = "No dependencies defined"
		c.Suggestion = "Add required dependencies to package.json"
	default:
		c.Passed = true
		c.Message = "Dependencies are defined"
	}
	return c
}

var requiredScripts = []string{"dev", "build"}

func checkScripts(p project) Check {
	c := Check{Name: "Build Scripts"}
	if p.manifest == nil {
		c.Message = "Could not check build scripts"
		c.Suggestion = "Verify package.json is valid"
		return c
	}
	var missing []string
	for _, s := range requiredScripts {
		if p.manifest.Scripts[s] == "" {
			missing = append(missing, s)
		}
	}
	if len(missing) > 0 {
		c.Message = "Missing scripts: " + strings.Join(missing, ", ")
		c.Suggestion = "Add dev and build scripts to package.json"
		return c
	}
	c.Passed = true
	c.Message = "Required scripts (dev, build) are defined"
	return c
}

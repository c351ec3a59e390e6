// Package scaffold runs the end-to-end pipeline that turns a validated
// project configuration into a ready-to-use directory:
//
//	resolve template -> retrieve -> customize -> [git init] -> [install]
//
// Steps run strictly in sequence. A failure during retrieval or
// customization leaves the partially populated directory in place.
package scaffold

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/create-fs-app/cli/internal/customize"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/process"
	"github.com/create-fs-app/cli/internal/project"
	"github.com/create-fs-app/cli/internal/retrieval"
	"github.com/create-fs-app/cli/internal/templates"
	"github.com/create-fs-app/cli/internal/vcs"
)

// Step identifies a pipeline stage for progress reporting.
type Step string

const (
	StepResolve   Step = "Resolving template"
	StepRetrieve  Step = "Downloading template"
	StepCustomize Step = "Customizing template"
	StepGit       Step = "Initializing git repository"
	StepInstall   Step = "Installing dependencies"
)

// Options controls one Scaffold call.
type Options struct {
	SkipGit     bool
	SkipInstall bool

	// Template bypasses catalog resolution, e.g. for a custom URL.
	Template *templates.Metadata

	// Branch overrides the template's branch.
	Branch string
}

// Result describes a finished scaffold.
type Result struct {
	Dir            string
	TemplateKey    string
	Template       templates.Metadata
	GitInitialized bool
	Installed      bool
}

// Config wires a Scaffolder.
type Config struct {
	Registry  *templates.Registry
	Retriever *retrieval.Retriever
	Git       vcs.Initializer
	Runner    process.Runner

	// WorkDir is the parent of generated projects.
	WorkDir string

	// Progress, when set, is called as each step starts.
	Progress func(Step)
}

// Scaffolder runs the pipeline.
type Scaffolder struct {
	registry  *templates.Registry
	retriever *retrieval.Retriever
	git       vcs.Initializer
	installer *Installer
	workDir   string
	progress  func(Step)
}

// New returns a Scaffolder.
func New(cfg Config) *Scaffolder {
	progress := cfg.Progress
	if progress == nil {
		progress = func(Step) {}
	}
	return &Scaffolder{
		registry:  cfg.Registry,
		retriever: cfg.Retriever,
		git:       cfg.Git,
		installer: NewInstaller(cfg.Runner),
		workDir:   cfg.WorkDir,
		progress:  progress,
	}
}

// TargetDir returns where a project named name is generated.
func (s *Scaffolder) TargetDir(name string) string {
	return filepath.Join(s.workDir, name)
}

// Scaffold generates the project described by cfg.
func (s *Scaffolder) Scaffold(ctx context.Context, cfg project.ProjectConfig, opts Options) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dir := s.TargetDir(cfg.Name)
	if err := ValidateProjectDirectory(dir); err != nil {
		return nil, err
	}
	log := output.ProjectLogger(cfg.Name)

	s.progress(StepResolve)
	res := &Result{Dir: dir}
	if opts.Template != nil {
		res.Template = *opts.Template
	} else {
		entry, ok := s.registry.Resolve(cfg.Stack)
		if !ok {
			return nil, &TemplateNotFoundError{
				Key:         templates.Key(cfg.Stack),
				Stack:       cfg.Stack,
				Suggestions: s.registry.Suggest(cfg.Stack),
			}
		}
		res.TemplateKey = entry.Key
		res.Template = entry.Metadata
	}
	log.Debug("resolved template", "key", res.TemplateKey, "url", res.Template.URL)

	s.progress(StepRetrieve)
	if err := s.retriever.Clone(ctx, res.Template, dir, opts.Branch); err != nil {
		return nil, fmt.Errorf("failed to scaffold project: %w", err)
	}

	s.progress(StepCustomize)
	if err := customize.Customize(dir, cfg); err != nil {
		return nil, fmt.Errorf("failed to scaffold project: customizing template: %w", err)
	}

	if !opts.SkipGit {
		s.progress(StepGit)
		if err := s.git.InitialCommit(ctx, dir, vcs.InitialCommitMessage(cfg.Name)); err != nil {
			log.Warn("git initialization failed", "err", err)
		} else {
			res.GitInitialized = true
		}
	}

	if !opts.SkipInstall {
		s.progress(StepInstall)
		if err := s.installer.Install(ctx, dir, cfg.PackageManager); err != nil {
			return res, err
		}
		res.Installed = true
	}

	return res, nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/create-fs-app/cli/internal/cmdtypes"
	"github.com/create-fs-app/cli/internal/cmdutil"
	oerrors "github.com/create-fs-app/cli/internal/errors"
	"github.com/create-fs-app/cli/internal/output"
	"github.com/create-fs-app/cli/internal/preset"
	"github.com/create-fs-app/cli/internal/project"
	"github.com/create-fs-app/cli/internal/prompt"
	"github.com/create-fs-app/cli/internal/retrieval"
	"github.com/create-fs-app/cli/internal/scaffold"
	"github.com/create-fs-app/cli/internal/templates"
)

// createFlags holds the flags of the create (root) command.
type createFlags struct {
	stack       cmdutil.StackFlags
	template    string
	templateURL string
	preset      string
	branch      string
	skipGit     bool
	skipInstall bool
	yes         bool
}

// AddTo registers the create flags on the given cobra command.
func (f *createFlags) AddTo(c *cobra.Command) {
	f.stack.AddTo(c)

	fl := c.Flags()
	fl.StringVarP(&f.template, "template", "t", "",
		"Use a catalog template by key (see 'create-fs-app list')")
	fl.StringVar(&f.templateURL, "template-url", "",
		"Use a custom template repository (https://host/owner/repo)")
	fl.StringVar(&f.preset, "preset", "",
		"Use a configuration preset")
	fl.StringVar(&f.branch, "branch", "",
		"Template branch to clone (default: the template's branch)")
	fl.BoolVar(&f.skipGit, "skip-git", false,
		"Skip git initialization")
	fl.BoolVar(&f.skipInstall, "skip-install", false,
		"Skip dependency installation")
	fl.BoolVarP(&f.yes, "yes", "y", false,
		"Skip prompts and use the default stack")
	fl.SetNormalizeFunc(legacyFlagNames)

	c.MarkFlagsMutuallyExclusive("template", "template-url", "preset")
}

func runCreate(c *cobra.Command, args []string, gc *cmdtypes.GlobalConfig, f *createFlags) error {
	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := c.OutOrStdout()
	defer output.RestoreCursor(out)

	cfg, opts, err := f.projectConfig(ctx, c, gc, cmdutil.ProjectName(args))
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(out, output.FormatStatusLine(output.StatusWarning, "Operation cancelled"))
		return nil
	}
	if err != nil {
		return cmdtypes.Fail(err)
	}
	if err := cfg.Validate(); err != nil {
		return cmdtypes.Fail(err)
	}

	workDir, err := gc.Env.WorkDir()
	if err != nil {
		return cmdtypes.Fail(fmt.Errorf("determining working directory: %w", err))
	}
	if err := scaffold.ValidateProjectDirectory(filepath.Join(workDir, cfg.Name)); err != nil {
		return cmdtypes.Fail(err)
	}

	// Report a missing template before any work starts.
	if opts.Template == nil {
		avail := scaffold.CheckTemplateAvailability(gc.Env.Registry, cfg.Stack)
		if !avail.Available {
			cmdutil.PrintTemplateNotFound(out, &scaffold.TemplateNotFoundError{
				Key:         templates.Key(cfg.Stack),
				Stack:       cfg.Stack,
				Suggestions: avail.Suggestions,
			})
			return nil
		}
	}

	git, err := gc.Git()
	if err != nil {
		return cmdtypes.Fail(err)
	}
	s := scaffold.New(scaffold.Config{
		Registry:  gc.Env.Registry,
		Retriever: retrieval.New(git, gc.Cache(git)),
		Git:       git,
		Runner:    gc.Env.Runner,
		WorkDir:   workDir,
		Progress: func(step scaffold.Step) {
			output.Debug(string(step), "project", cfg.Name)
		},
	})

	// The installer inherits the terminal, so it runs after the spinner stops.
	scaffoldOpts := opts
	scaffoldOpts.SkipInstall = true

	var res *scaffold.Result
	err = output.Spin(ctx, "Creating your full-stack app...", func(ctx context.Context) error {
		var err error
		res, err = s.Scaffold(ctx, cfg, scaffoldOpts)
		return err
	})
	if err != nil {
		var nf *scaffold.TemplateNotFoundError
		if errors.As(err, &nf) {
			cmdutil.PrintTemplateNotFound(out, nf)
			return nil
		}
		fmt.Fprintln(out, output.FormatStatusLine(output.StatusFailed, "Project creation failed!"))
		return cmdtypes.Fail(err)
	}
	fmt.Fprintln(out, output.FormatCheckmark("Project created successfully!"))
	cmdutil.PrintLayout(out, cfg.Name, res.Dir)
	if !res.GitInitialized && !opts.SkipGit {
		fmt.Fprintln(out, output.FormatStatusLine(output.StatusWarning, "Git repository was not initialized"))
	}

	installed := false
	if !opts.SkipInstall {
		output.Info("installing dependencies", "packageManager", cfg.PackageManager)
		if err := scaffold.NewInstaller(gc.Env.Runner).Install(ctx, res.Dir, cfg.PackageManager); err != nil {
			return cmdtypes.Fail(fmt.Errorf("%w\nThe project was created at %s. Run '%s install' inside it to finish setup",
				err, res.Dir, cfg.PackageManager))
		}
		installed = true
	}

	cmdutil.PrintSuccess(out, cfg.Name, cfg.PackageManager, installed)
	return nil
}

// projectConfig decides where the configuration comes from: a preset, a
// custom template URL, a catalog template, the stack flags, the default stack
// or the interactive prompt, in that order.
func (f *createFlags) projectConfig(ctx context.Context, c *cobra.Command, gc *cmdtypes.GlobalConfig, name string) (project.ProjectConfig, scaffold.Options, error) {
	out := c.OutOrStdout()
	opts := scaffold.Options{
		SkipGit:     f.skipGit,
		SkipInstall: f.skipInstall,
		Branch:      f.branch,
	}

	switch {
	case f.preset != "":
		if name == "" {
			return project.ProjectConfig{}, opts, nameRequired("--preset <preset-name>")
		}
		store := gc.Presets()
		p, ok := store.Get(f.preset)
		if !ok {
			return project.ProjectConfig{}, opts, preset.NotFoundError(f.preset)
		}
		body := "Preset: " + output.StyleNoun.Render(p.Name)
		if p.Description != "" {
			body += "\nDescription: " + p.Description
		}
		fmt.Fprintln(out, output.Box("Using Preset", body, output.ColorCyan))
		return p.ProjectConfig(name), opts, nil

	case f.templateURL != "":
		if name == "" {
			return project.ProjectConfig{}, opts, nameRequired("--template-url <url>")
		}
		if err := templates.ValidateURL(f.templateURL); err != nil {
			return project.ProjectConfig{}, opts, err
		}
		meta := templates.Custom(f.templateURL)
		opts.Template = &meta
		fmt.Fprintln(out, output.Box("Using Custom Template", "URL: "+output.StyleNoun.Render(meta.URL), output.ColorCyan))
		return project.DefaultStack().WithName(name), opts, nil

	case f.template != "":
		entry, ok := gc.Env.Registry.Find(f.template)
		if !ok {
			return project.ProjectConfig{}, opts, oerrors.NewNotFoundError(
				fmt.Sprintf("template %q doesn't exist", f.template),
				"",
				"Use 'create-fs-app list' to see available templates.",
			)
		}
		if name == "" {
			return project.ProjectConfig{}, opts, nameRequired("--template <template-name>")
		}
		stack, err := templates.StackFromKey(entry.Key)
		if err != nil {
			return project.ProjectConfig{}, opts, err
		}
		fmt.Fprintln(out, output.Box("Using Template",
			"Template: "+output.StyleNoun.Render(entry.Key)+"\nDescription: "+entry.Metadata.Description,
			output.ColorCyan))
		return stack.WithName(name), opts, nil

	case f.stack.Changed(c):
		if name == "" {
			return project.ProjectConfig{}, opts, nameRequired("[options]")
		}
		stack, err := f.stack.Stack(c)
		if err != nil {
			return project.ProjectConfig{}, opts, err
		}
		cfg := stack.WithName(name)
		fmt.Fprintln(out, output.StyleHeading.Render("Configuration from CLI options:"))
		cmdutil.PrintStack(out, cfg)
		return cfg, opts, nil

	case f.yes:
		if name == "" {
			name = prompt.DefaultProjectName
		}
		return project.DefaultStack().WithName(name), opts, nil

	case gc.Env.Interactive():
		cfg, err := askProject(ctx, gc.Env.In, out, name)
		return cfg, opts, err

	default:
		return project.ProjectConfig{}, opts, oerrors.NewValidationError(
			"project name and stack flags are required when not running in a terminal",
			"",
			"Pass --monorepo, --frontend, --backend and --database, or --yes for the default stack.",
		)
	}
}

func askProject(ctx context.Context, in io.Reader, out io.Writer, name string) (project.ProjectConfig, error) {
	answers, err := prompt.Run(ctx, in, out, prompt.ProjectQuestions(name == ""))
	if err != nil {
		return project.ProjectConfig{}, err
	}
	return prompt.ConfigFromAnswers(name, answers)
}

func nameRequired(usage string) error {
	return oerrors.NewValidationError(
		"project name is required",
		"name",
		"Usage: create-fs-app <project-name> "+usage,
	)
}

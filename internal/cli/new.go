package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/company/nextstart/internal/config"
	"github.com/company/nextstart/internal/detect"
	"github.com/company/nextstart/internal/exitcodes"
	"github.com/company/nextstart/internal/installer"
	"github.com/company/nextstart/internal/pm"
	"github.com/company/nextstart/internal/scaffold"
	"github.com/company/nextstart/internal/ui"
	"github.com/spf13/cobra"
)

// settleTimeout bounds how long detection waits for the generator's files.
const settleTimeout = 15 * time.Second

// extraPackages is the consolidated batch installed once when Tailwind is
// present and at least one feature was requested.
var extraPackages = []string{"clsx", "tailwind-merge", "class-variance-authority", "lucide-react"}

type newOptions struct {
	pmName    string
	shadcn    bool
	nextauth  bool
	turbopack bool
	preset    string
	yes       bool
}

func (a *App) newNewCmd() *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new Next.js project",
		Long:  "Runs create-next-app interactively, then sets up the selected extras.\nAnswers not given as flags or in a preset are collected with prompts.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.collectProject(cmd, args, opts)
			if err != nil {
				return err
			}
			return a.runNew(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&opts.pmName, "pm", "", "package manager (npm, yarn, pnpm, bun)")
	cmd.Flags().BoolVar(&opts.shadcn, "shadcn", false, "set up shadcn/ui components")
	cmd.Flags().BoolVar(&opts.nextauth, "nextauth", false, "set up NextAuth authentication")
	cmd.Flags().BoolVar(&opts.turbopack, "turbopack", false, "use Turbopack for next dev")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "YAML preset file with answers")
	cmd.Flags().BoolVar(&opts.yes, "yes", false, "accept defaults instead of prompting")

	return cmd
}

// collectProject merges preset file, flags and prompts into a validated
// Project. Precedence: flags over preset over prompts.
func (a *App) collectProject(cmd *cobra.Command, args []string, opts *newOptions) (*config.Project, error) {
	p := &config.Project{}

	if opts.preset != "" {
		loaded, err := config.LoadPreset(opts.preset)
		if err != nil {
			return nil, &ExitError{Code: exitcodes.UsageError, Message: err.Error()}
		}
		p = loaded
	}

	if len(args) > 0 {
		p.Name = args[0]
	}
	flags := cmd.Flags()
	if flags.Changed("pm") {
		p.PackageManager = pm.Manager(opts.pmName)
	}
	if flags.Changed("shadcn") {
		p.Shadcn = opts.shadcn
	}
	if flags.Changed("nextauth") {
		p.NextAuth = opts.nextauth
	}
	if flags.Changed("turbopack") {
		p.Turbopack = opts.turbopack
	}

	interactive := !opts.yes && !ui.IsCI()
	askedFeatures := flags.Changed("shadcn") || flags.Changed("nextauth") ||
		flags.Changed("turbopack") || opts.preset != ""

	if p.Name == "" {
		if !interactive {
			return nil, &ExitError{Code: exitcodes.UsageError, Message: "project name is required (pass it as an argument)"}
		}
		name, err := ui.AskProjectName("", config.ValidateName)
		if err != nil {
			return nil, promptError(err)
		}
		p.Name = name
	}

	if p.PackageManager == "" {
		if !interactive {
			p.PackageManager = pm.Npm
		} else {
			choices := make([]string, len(pm.All))
			for i, m := range pm.All {
				choices[i] = m.String()
			}
			selected, err := ui.AskPackageManager(choices)
			if err != nil {
				return nil, promptError(err)
			}
			p.PackageManager = pm.Manager(selected)
		}
	}

	if interactive && !askedFeatures {
		features, err := ui.AskFeatures(ui.Features{})
		if err != nil {
			return nil, promptError(err)
		}
		p.Shadcn = features.Shadcn
		p.NextAuth = features.NextAuth
		p.Turbopack = features.Turbopack
	}

	if err := config.Validate(p); err != nil {
		return nil, &ExitError{Code: exitcodes.UsageError, Message: err.Error()}
	}
	return p, nil
}

// promptError translates a user-aborted prompt into the conventional
// interrupt exit code; other prompt errors pass through unchanged.
func promptError(err error) error {
	if ui.IsCancelled(err) {
		return &ExitError{Code: exitcodes.Cancelled, Message: "cancelled"}
	}
	return err
}

// runNew is the scaffolding pipeline: generate, detect, scaffold, install
// features, report. Generator failure is fatal; feature failures are not.
func (a *App) runNew(ctx context.Context, cfg *config.Project) error {
	a.output.Banner(a.version)

	root := filepath.Join(a.baseDir, cfg.Name)

	a.output.Section("Creating Next.js app")
	genArgs := []string{"npx", "create-next-app@latest", cfg.Name}
	if flag := cfg.PackageManager.CreateNextAppFlag(); flag != "" {
		genArgs = append(genArgs, flag)
	}
	if cfg.Turbopack {
		genArgs = append(genArgs, "--turbopack")
	} else {
		genArgs = append(genArgs, "--no-turbopack")
	}
	if err := a.runner.RunInteractive(ctx, a.baseDir, genArgs...); err != nil {
		return &ExitError{
			Code:    exitcodes.GeneratorError,
			Message: fmt.Sprintf("create-next-app failed: %v", err),
		}
	}

	// The generator may still be flushing writes when it hands the
	// terminal back.
	var structure *detect.Structure
	err := ui.WithSpinner("Inspecting the generated project...", func() error {
		detect.WaitSettled(root, settleTimeout)
		structure = detect.Detect(root)
		return nil
	})
	if err != nil {
		return err
	}
	a.logStructure(structure)

	a.output.Section("Scaffolding project layout")
	if err := scaffold.EnsureSkeleton(root, structure.UseSrcDir); err != nil {
		return fmt.Errorf("creating directories: %w", err)
	}
	if structure.UseTailwind {
		if err := scaffold.WriteUtils(root, structure.UseSrcDir, structure.UseTypeScript); err != nil {
			return fmt.Errorf("writing lib/utils: %w", err)
		}
	}
	a.output.Success("Created components/, lib/, hooks/ and types/")

	a.output.Section("Setting up features")
	shadcn := &installer.Shadcn{Runner: a.runner, Output: a.output}
	shadcnRes := shadcn.Run(ctx, root, cfg, structure)

	auth := &installer.NextAuth{Runner: a.runner, Output: a.output}
	authRes := auth.Run(ctx, root, cfg, structure)

	style := scaffold.HomePlain
	switch {
	case shadcnRes.State == installer.StateDone:
		style = scaffold.HomeShadcn
	case structure.UseTailwind:
		style = scaffold.HomeTailwind
	}
	if err := scaffold.WriteHomepage(root, structure.UseSrcDir, structure.UseTypeScript, style); err != nil {
		return fmt.Errorf("writing homepage: %w", err)
	}

	if structure.UseTailwind && (shadcnRes.Ran() || authRes.Ran()) {
		installErr := ui.WithSpinner("Installing extra dependencies...", func() error {
			return a.runner.Run(ctx, root, cfg.PackageManager.InstallArgs(extraPackages, false)...)
		})
		if installErr != nil {
			a.output.Warning("Extra dependencies failed to install: %v", installErr)
			a.output.Hint("%s", strings.Join(cfg.PackageManager.InstallArgs(extraPackages, false), " "))
		} else {
			a.output.Success("Installed extra dependencies")
		}
	}

	a.printSummary(cfg, structure, shadcnRes, authRes)
	return nil
}

func (a *App) logStructure(s *detect.Structure) {
	for _, sig := range s.Signals {
		a.logger.Debug("detect", "signal", sig.Name, "active", sig.Active, "reason", sig.Reason)
	}
	a.logger.Debug("detect",
		"srcDir", s.UseSrcDir,
		"typescript", s.UseTypeScript,
		"tailwind", s.UseTailwind,
		"tailwindVersion", s.TailwindVersion,
	)
}

func (a *App) printSummary(cfg *config.Project, s *detect.Structure, results ...installer.Result) {
	a.output.Section("Done")
	a.output.Success("Created %s (TypeScript: %v, Tailwind: %s)", cfg.Name, s.UseTypeScript, tailwindLabel(s))

	for _, res := range results {
		switch {
		case res.Failed():
			a.output.Error("%s failed, see the recovery commands above", res.Name)
		case res.State == installer.StateDone:
			a.output.Success("%s ready", res.Name)
		case res.State == installer.StateBlocked:
			a.output.Warning("%s skipped: precondition not met", res.Name)
		}
	}

	a.output.Info("\nNext steps:")
	a.output.Hint("cd %s", cfg.Name)
	a.output.Hint("%s", cfg.PackageManager.RunCommand("dev"))
}

func tailwindLabel(s *detect.Structure) string {
	if !s.UseTailwind {
		return "no"
	}
	if s.TailwindVersion == "" {
		return "yes"
	}
	return s.TailwindVersion
}

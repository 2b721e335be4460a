package installer

import (
	"context"
	"fmt"
	"strings"

	"github.com/company/nextstart/internal/config"
	"github.com/company/nextstart/internal/detect"
	"github.com/company/nextstart/internal/execx"
	"github.com/company/nextstart/internal/scaffold"
	"github.com/company/nextstart/internal/ui"
)

// BaselineComponents are installed for every shadcn setup.
var BaselineComponents = []string{"button", "card", "input", "label", "dropdown-menu"}

const shadcnCLI = "shadcn@latest"

// Shadcn sets up shadcn/ui: a legacy config shim where needed, the
// interactive init, a baseline component set, and dark-mode theming.
type Shadcn struct {
	Runner execx.Runner
	Output *ui.Output
}

// Run executes the shadcn setup against the project at root. Tailwind is a
// hard precondition: without it the feature is blocked and nothing runs.
func (s *Shadcn) Run(ctx context.Context, root string, cfg *config.Project, st *detect.Structure) Result {
	res := Result{Name: "shadcn/ui"}

	if !cfg.Shadcn {
		res.State = StateSkipped
		return res
	}

	if !st.UseTailwind {
		s.Output.Warning("shadcn/ui requires Tailwind CSS, which was not detected; skipping the component setup")
		res.State = StateBlocked
		res.Hints = []string{"install Tailwind CSS, then run: " + execHint(cfg, shadcnCLI, "init")}
		return res
	}

	mgr := cfg.PackageManager

	// The shadcn generator reads content globs from a legacy-style config.
	// Write one when the project has none, or when it is on v4 and the
	// real config lives in postcss.config.mjs.
	if st.TailwindVersion == "v4" || !st.SignalActive(detect.SignalTailwindV3Config) {
		if err := s.Runner.Run(ctx, root, mgr.InstallArgs([]string{"tailwindcss-animate"}, true)...); err != nil {
			return s.fail(res, cfg, fmt.Errorf("installing tailwindcss-animate: %w", err))
		}
		if err := scaffold.WriteTailwindShim(root, st.UseTypeScript); err != nil {
			return s.fail(res, cfg, fmt.Errorf("writing tailwind.config.js: %w", err))
		}
		s.Output.Success("Wrote tailwind.config.js (content globs for the shadcn generator)")
	}

	// The init command drives its own prompts.
	s.Output.Info("Running %s init...", shadcnCLI)
	if err := s.Runner.RunInteractive(ctx, root, mgr.ExecArgs(shadcnCLI, "init")...); err != nil {
		return s.fail(res, cfg, fmt.Errorf("shadcn init: %w", err))
	}

	addArgs := append([]string{"add"}, BaselineComponents...)
	if err := s.Runner.Run(ctx, root, mgr.ExecArgs(shadcnCLI, addArgs...)...); err != nil {
		return s.fail(res, cfg, fmt.Errorf("adding components: %w", err))
	}
	s.Output.Success("Added components: %s", strings.Join(BaselineComponents, ", "))

	if err := s.Runner.Run(ctx, root, mgr.InstallArgs([]string{"next-themes"}, false)...); err != nil {
		return s.fail(res, cfg, fmt.Errorf("installing next-themes: %w", err))
	}
	if err := scaffold.WriteThemeProvider(root, st.UseSrcDir, st.UseTypeScript); err != nil {
		return s.fail(res, cfg, fmt.Errorf("writing theme provider: %w", err))
	}

	patch, err := scaffold.PatchLayout(root, st.UseSrcDir, st.UseTypeScript)
	if err != nil {
		return s.fail(res, cfg, fmt.Errorf("patching layout: %w", err))
	}
	s.reportPatch(patch)

	res.State = StateDone
	return res
}

func (s *Shadcn) reportPatch(patch *scaffold.PatchResult) {
	if patch.Skipped != "" {
		s.Output.Warning("Layout not patched: %s", patch.Skipped)
		return
	}
	for _, edit := range patch.Edits {
		if !edit.Applied {
			s.Output.Warning("Layout edit %q found nothing to change, review %s by hand", edit.Name, patch.Target)
		}
	}
	s.Output.Success("Wired ThemeProvider into the root layout")
}

func (s *Shadcn) fail(res Result, cfg *config.Project, err error) Result {
	res.State = StateFailed
	res.Err = err
	res.Hints = []string{
		execHint(cfg, shadcnCLI, "init"),
		execHint(cfg, shadcnCLI, append([]string{"add"}, BaselineComponents...)...),
	}
	s.Output.Error("shadcn/ui setup failed: %v", err)
	s.Output.Info("Finish it manually with:")
	for _, h := range res.Hints {
		s.Output.Info("  %s", h)
	}
	return res
}

// execHint renders a pm-exec command line for recovery instructions.
func execHint(cfg *config.Project, tool string, args ...string) string {
	return strings.Join(cfg.PackageManager.ExecArgs(tool, args...), " ")
}

package cli

import (
	"github.com/company/nextstart/internal/detect"
	"github.com/spf13/cobra"
)

func (a *App) newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [dir]",
		Short: "Show what nextstart detects about an existing project",
		Long:  "Inspects a project directory and prints the capability snapshot,\nincluding the reason each detection signal fired or didn't.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return a.runDetect(dir)
		},
	}
}

func (a *App) runDetect(dir string) error {
	s := detect.Detect(dir)

	a.output.Section("Capabilities")
	a.output.Info("src directory:    %v", s.UseSrcDir)
	a.output.Info("TypeScript:       %v", s.UseTypeScript)
	a.output.Info("Tailwind CSS:     %v", s.UseTailwind)
	a.output.Info("Tailwind version: %s", orUnknown(s.TailwindVersion))

	a.output.Section("Signals")
	for _, sig := range s.Signals {
		if sig.Active {
			a.output.Success("%-24s %s", sig.Name, sig.Reason)
		} else {
			a.output.Info("  %-24s %s", sig.Name, sig.Reason)
		}
	}

	return nil
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/company/nextstart/internal/execx"
	"github.com/company/nextstart/internal/ui"
	"github.com/spf13/cobra"
)

// App is the dependency container for all CLI commands.
type App struct {
	rootCmd *cobra.Command
	version string
	commit  string
	date    string

	output *ui.Output
	logger *log.Logger
	runner execx.Runner

	baseDir string
	debug   bool
}

// NewApp creates the root command and registers all subcommands.
func NewApp(version, commit, date string) *App {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "nextstart",
	})
	logger.SetLevel(log.WarnLevel)

	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		output:  ui.NewOutput(),
		logger:  logger,
	}
	app.runner = execx.NewRunner(logger)

	root := &cobra.Command{
		Use:   "nextstart",
		Short: "Scaffold a Next.js app with optional shadcn/ui and NextAuth",
		Long:  "Wraps create-next-app, detects what it generated, and layers\nshadcn/ui components and NextAuth authentication on top.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if os.Getenv("NEXTSTART_DEBUG") != "" {
				app.debug = true
			}
			if app.debug {
				app.logger.SetLevel(log.DebugLevel)
			}
			if os.Getenv("NO_COLOR") != "" {
				app.output.SetNoColor(true)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&app.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&app.baseDir, "dir", ".", "directory to create the project in")

	root.AddCommand(
		app.newNewCmd(),
		app.newDetectCmd(),
		app.newVersionCmd(),
	)

	app.rootCmd = root
	return app
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			a.output.Info("nextstart %s (commit: %s, built: %s)", a.version, a.commit, a.date)
		},
	}
}

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

package ui

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
)

// IsCI returns true if running in a CI environment.
func IsCI() bool {
	return isTruthy(os.Getenv("CI")) ||
		isTruthy(os.Getenv("NEXTSTART_CI")) ||
		isTruthy(os.Getenv("GITHUB_ACTIONS")) ||
		isTruthy(os.Getenv("GITLAB_CI"))
}

func isTruthy(v string) bool {
	return v != "" && v != "false" && v != "0"
}

// AskProjectName prompts for the project name, validating each keystroke's
// result with the supplied function.
func AskProjectName(def string, validate func(string) error) (string, error) {
	name := def
	err := huh.NewInput().
		Title("What is your project named?").
		Placeholder("my-app").
		Validate(validate).
		Value(&name).
		Run()
	return name, err
}

// AskPackageManager prompts for one of the supported package managers.
func AskPackageManager(choices []string) (string, error) {
	var selected string
	options := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		options = append(options, huh.NewOption(c, c))
	}

	err := huh.NewSelect[string]().
		Title("Which package manager do you want to use?").
		Options(options...).
		Value(&selected).
		Run()
	return selected, err
}

// Features are the optional add-ons collected interactively.
type Features struct {
	Shadcn    bool
	NextAuth  bool
	Turbopack bool
}

// AskFeatures prompts for the optional feature flags.
func AskFeatures(def Features) (Features, error) {
	f := def

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add shadcn/ui components?").
				Description("Requires Tailwind CSS in the generated project").
				Affirmative("Yes").
				Negative("No").
				Value(&f.Shadcn),
			huh.NewConfirm().
				Title("Add NextAuth authentication?").
				Affirmative("Yes").
				Negative("No").
				Value(&f.NextAuth),
			huh.NewConfirm().
				Title("Use Turbopack for next dev?").
				Affirmative("Yes").
				Negative("No").
				Value(&f.Turbopack),
		),
	).Run()
	return f, err
}

// IsCancelled reports whether a prompt error came from the user aborting
// the form (Ctrl-C or Esc).
func IsCancelled(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

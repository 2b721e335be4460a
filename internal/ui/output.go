package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// Output handles styled terminal output.
type Output struct {
	noColor bool
}

// NewOutput creates a new Output instance.
func NewOutput() *Output {
	return &Output{}
}

// SetNoColor disables colored output.
func (o *Output) SetNoColor(v bool) {
	o.noColor = v
}

// Banner prints the application banner before the pipeline starts.
func (o *Output) Banner(version string) {
	title := fmt.Sprintf("nextstart %s", version)
	if o.noColor {
		fmt.Fprintf(os.Stdout, "%s\n\n", title)
		return
	}
	fmt.Fprintf(os.Stdout, "%s\n\n", bannerStyle.Render(title))
}

// Section prints a titled divider between pipeline stages.
func (o *Output) Section(title string) {
	if o.noColor {
		fmt.Fprintf(os.Stdout, "\n== %s ==\n", title)
		return
	}
	fmt.Fprintf(os.Stdout, "\n%s\n", sectionStyle.Render("» "+title))
}

// Hint prints a dimmed follow-up command line.
func (o *Output) Hint(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if o.noColor {
		fmt.Fprintf(os.Stdout, "  %s\n", msg)
		return
	}
	fmt.Fprintf(os.Stdout, "  %s\n", hintStyle.Render(msg))
}

// Success prints a success message with a green checkmark.
func (o *Output) Success(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if o.noColor {
		fmt.Fprintf(os.Stdout, "OK %s\n", msg)
	} else {
		fmt.Fprintf(os.Stdout, "\033[32m✓\033[0m %s\n", msg)
	}
}

// Error prints an error message with a red X.
func (o *Output) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if o.noColor {
		fmt.Fprintf(os.Stderr, "FAIL %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", msg)
	}
}

// Warning prints a warning message with a yellow exclamation.
func (o *Output) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if o.noColor {
		fmt.Fprintf(os.Stderr, "WARN %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "\033[33m!\033[0m %s\n", msg)
	}
}

// Info prints an informational message.
func (o *Output) Info(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

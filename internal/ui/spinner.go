package ui

import (
	"github.com/charmbracelet/huh/spinner"
)

// WithSpinner runs fn behind a terminal spinner titled with title. CI runs
// skip the spinner entirely so logs stay line-oriented. The spinner's own
// error (a broken terminal) takes precedence over fn's.
func WithSpinner(title string, fn func() error) error {
	if IsCI() {
		return fn()
	}

	var fnErr error
	spin := spinner.New().
		Title(title).
		Action(func() { fnErr = fn() })
	if err := spin.Run(); err != nil {
		return err
	}
	return fnErr
}

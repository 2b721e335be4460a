// Package exitcodes defines the process exit codes used by the CLI.
package exitcodes

const (
	GeneralError   = 1
	UsageError     = 2
	GeneratorError = 3
	Cancelled      = 130
)

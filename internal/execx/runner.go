// Package execx runs external commands for the scaffolding pipeline.
//
// Commands run in one of two modes: silent (output captured, surfaced only on
// failure) or interactive (stdio handed to the child so tools like
// create-next-app and shadcn init can drive their own prompts).
package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner executes external commands in a working directory.
type Runner interface {
	// Run executes a command silently, capturing combined output.
	// A non-zero exit returns an error carrying the output tail.
	Run(ctx context.Context, dir string, argv ...string) error

	// RunInteractive executes a command with inherited stdio, handing
	// terminal control to the child process until it exits.
	RunInteractive(ctx context.Context, dir string, argv ...string) error
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct {
	logger *log.Logger
}

// NewRunner creates an ExecRunner. The logger may be nil to disable
// per-command debug logging.
func NewRunner(logger *log.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

func (r *ExecRunner) Run(ctx context.Context, dir string, argv ...string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	r.debugf("run", dir, argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &CommandError{Argv: argv, Output: tail(string(out), 20), Err: err}
	}
	return nil
}

func (r *ExecRunner) RunInteractive(ctx context.Context, dir string, argv ...string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	r.debugf("run interactive", dir, argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &CommandError{Argv: argv, Err: err}
	}
	return nil
}

func (r *ExecRunner) debugf(msg, dir string, argv []string) {
	if r.logger != nil {
		r.logger.Debug(msg, "cmd", strings.Join(argv, " "), "dir", dir)
	}
}

// CommandError reports a failed external command together with the tail of
// its output, so recovery hints can show what actually went wrong.
type CommandError struct {
	Argv   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	line := strings.Join(e.Argv, " ")
	if e.Output == "" {
		return fmt.Sprintf("command %q failed: %v", line, e.Err)
	}
	return fmt.Sprintf("command %q failed: %v\n%s", line, e.Err, e.Output)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// tail returns at most n trailing lines of s.
func tail(s string, n int) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// Package installer holds the optional feature setups layered onto a
// generated project. Each installer checks its precondition against the
// capability snapshot, runs external tools, and writes configuration files.
//
// Installer failures are feature-scoped: a Result with StateFailed carries
// the error and manual-recovery commands, and the pipeline continues.
package installer

// State is an installer's terminal state.
type State string

const (
	StateSkipped State = "skipped"
	StateBlocked State = "blocked"
	StateDone    State = "done"
	StateFailed  State = "failed"
)

// Result is what an installer reports back to the pipeline summary.
type Result struct {
	Name  string
	State State
	Err   error

	// Hints are the exact commands to finish the setup by hand after a
	// failure.
	Hints []string
}

// Failed reports whether the feature ended in an error state.
func (r Result) Failed() bool {
	return r.State == StateFailed
}

// Ran reports whether the feature attempted any work.
func (r Result) Ran() bool {
	return r.State == StateDone || r.State == StateFailed
}

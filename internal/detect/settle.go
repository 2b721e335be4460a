package detect

import (
	"os"
	"path/filepath"
	"time"
)

const (
	settlePollInterval = 250 * time.Millisecond
	settleGrace        = time.Second
)

// WaitSettled waits for the external generator's output to stop changing
// before detection runs. It polls until package.json exists with a size that
// is stable across two consecutive polls, then sleeps a short grace period.
//
// This is a race-avoidance heuristic, not a guarantee: the generator's
// write-completion signal is unobservable from here. On timeout WaitSettled
// returns anyway and detection proceeds best-effort.
func WaitSettled(root string, timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	manifest := filepath.Join(root, "package.json")

	lastSize := int64(-1)
	for time.Now().Before(deadline) {
		info, err := os.Stat(manifest)
		if err == nil {
			if info.Size() == lastSize {
				break
			}
			lastSize = info.Size()
		}
		time.Sleep(settlePollInterval)
	}

	time.Sleep(settleGrace)
}

package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestIsCancelled(t *testing.T) {
	if !IsCancelled(huh.ErrUserAborted) {
		t.Error("a user abort should be recognized")
	}
	if !IsCancelled(fmt.Errorf("prompting: %w", huh.ErrUserAborted)) {
		t.Error("a wrapped user abort should be recognized")
	}
	if IsCancelled(errors.New("terminal broke")) {
		t.Error("other errors are not cancellations")
	}
}

func TestIsCI(t *testing.T) {
	for _, env := range []string{"CI", "NEXTSTART_CI", "GITHUB_ACTIONS", "GITLAB_CI"} {
		t.Setenv(env, "")
	}
	if IsCI() {
		t.Fatal("no CI variables set")
	}

	t.Setenv("NEXTSTART_CI", "1")
	if !IsCI() {
		t.Error("NEXTSTART_CI=1 should mark a CI run")
	}

	t.Setenv("NEXTSTART_CI", "false")
	if IsCI() {
		t.Error("a false-valued variable is not a CI run")
	}
}

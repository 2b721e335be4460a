package execx

import (
	"strings"
	"testing"
)

func TestTail(t *testing.T) {
	in := "a\nb\nc\nd\n"
	got := tail(in, 2)
	if got != "c\nd" {
		t.Errorf("tail = %q, want %q", got, "c\nd")
	}

	if tail("", 5) != "" {
		t.Error("tail of empty string should be empty")
	}

	if tail("only\n", 5) != "only" {
		t.Error("tail should trim trailing newline")
	}
}

func TestCommandErrorMessage(t *testing.T) {
	err := &CommandError{
		Argv:   []string{"npm", "install", "next-themes"},
		Output: "ERR! network timeout",
		Err:    errExit,
	}

	msg := err.Error()
	if !strings.Contains(msg, "npm install next-themes") {
		t.Errorf("error should contain the command line, got %q", msg)
	}
	if !strings.Contains(msg, "network timeout") {
		t.Errorf("error should contain the output tail, got %q", msg)
	}
}

var errExit = &exitStub{}

type exitStub struct{}

func (e *exitStub) Error() string { return "exit status 1" }

// Package pm maps the supported Node package managers onto the command
// lines used for installing dependencies and running package binaries.
package pm

import "fmt"

// Manager is one of the supported Node package managers.
type Manager string

const (
	Npm  Manager = "npm"
	Yarn Manager = "yarn"
	Pnpm Manager = "pnpm"
	Bun  Manager = "bun"
)

// All lists the supported managers in prompt order.
var All = []Manager{Npm, Yarn, Pnpm, Bun}

// Parse validates a package manager name.
func Parse(s string) (Manager, error) {
	switch Manager(s) {
	case Npm, Yarn, Pnpm, Bun:
		return Manager(s), nil
	}
	return "", fmt.Errorf("unsupported package manager %q (expected npm, yarn, pnpm or bun)", s)
}

// String returns the manager's binary name.
func (m Manager) String() string {
	return string(m)
}

// InstallArgs builds the argv (including the binary) for installing packages.
func (m Manager) InstallArgs(pkgs []string, dev bool) []string {
	var args []string
	switch m {
	case Yarn:
		args = []string{"yarn", "add"}
	case Pnpm:
		args = []string{"pnpm", "add"}
	case Bun:
		args = []string{"bun", "add"}
	default:
		args = []string{"npm", "install"}
	}
	args = append(args, pkgs...)
	if dev {
		args = append(args, "-D")
	}
	return args
}

// ExecArgs builds the argv for running a package binary (npx-style).
func (m Manager) ExecArgs(tool string, toolArgs ...string) []string {
	var args []string
	switch m {
	case Yarn:
		args = []string{"yarn", "dlx", tool}
	case Pnpm:
		args = []string{"pnpm", "dlx", tool}
	case Bun:
		args = []string{"bunx", tool}
	default:
		args = []string{"npx", tool}
	}
	return append(args, toolArgs...)
}

// CreateNextAppFlag returns the --use-<pm> flag for create-next-app, or ""
// for npm which is its default.
func (m Manager) CreateNextAppFlag() string {
	if m == Npm {
		return ""
	}
	return "--use-" + string(m)
}

// RunCommand returns the command a user types to start the dev server,
// for the post-scaffold summary.
func (m Manager) RunCommand(script string) string {
	switch m {
	case Yarn:
		return "yarn " + script
	case Pnpm:
		return "pnpm " + script
	case Bun:
		return "bun run " + script
	default:
		return "npm run " + script
	}
}

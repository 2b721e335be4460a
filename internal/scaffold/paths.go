// Package scaffold writes and patches files inside a generated project.
//
// Every operation takes the project root explicitly; the process working
// directory is never consulted. Target paths depend on two structural flags:
// whether the project keeps sources under src/, and whether it uses
// TypeScript.
package scaffold

import "path/filepath"

// BaseDir returns the directory that app/, lib/ and components/ live under.
func BaseDir(root string, useSrc bool) string {
	if useSrc {
		return filepath.Join(root, "src")
	}
	return root
}

// ScriptExt returns the extension for plain code files.
func ScriptExt(ts bool) string {
	if ts {
		return "ts"
	}
	return "js"
}

// MarkupExt returns the extension for component files.
func MarkupExt(ts bool) string {
	if ts {
		return "tsx"
	}
	return "jsx"
}

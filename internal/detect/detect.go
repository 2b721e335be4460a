// Package detect infers a generated project's capabilities from its files.
//
// Detection is read-only and deliberately permissive: each capability is the
// OR of several independent signals, and any unreadable or missing candidate
// file counts as "signal absent" rather than an error. The whole snapshot is
// re-derived from disk on every run; nothing is persisted.
package detect

import (
	"strings"
)

// Structure is the capability snapshot of a generated project.
type Structure struct {
	UseSrcDir     bool
	UseTypeScript bool
	UseTailwind   bool

	// TailwindVersion is "", "v3" or "v4". A resolved version implies
	// UseTailwind; the converse does not hold.
	TailwindVersion string

	// Signals records every detection predicate with the reason it fired
	// (or didn't), for the detect command and for tests.
	Signals []Signal
}

// Signal is one named detection predicate outcome.
type Signal struct {
	Name   string
	Active bool
	Reason string
}

// Signal names, for callers that care about a specific predicate.
const (
	SignalSrcDir           = "src-dir"
	SignalTypeScript       = "typescript"
	SignalTailwindV3Config = "tailwind-v3-config"
	SignalTailwindV4Config = "tailwind-v4-config"
	SignalTailwindDep      = "tailwind-dependency"
	SignalTailwindCSS      = "tailwind-stylesheet"
	SignalTailwindPostcss  = "tailwind-postcss-plugin"
)

// SignalActive reports whether the named signal fired.
func (s *Structure) SignalActive(name string) bool {
	for _, sig := range s.Signals {
		if sig.Name == name {
			return sig.Active
		}
	}
	return false
}

// Detect inspects the project at root and returns its capability snapshot.
// It never returns an error: absent or unreadable files are normal negative
// signals.
func Detect(root string) *Structure {
	src := srcDirSignal(root)
	ts := typescriptSignal(root)
	v3cfg := tailwindV3ConfigSignal(root)
	v4cfg := tailwindV4ConfigSignal(root)
	dep, depVersion := tailwindDependencySignal(root)
	css := tailwindStylesheetSignal(root)
	postcss := tailwindPostcssRefSignal(root)

	s := &Structure{
		UseSrcDir:     src.Active,
		UseTypeScript: ts.Active,
		UseTailwind:   v3cfg.Active || v4cfg.Active || dep.Active || css.Active || postcss.Active,
		Signals:       []Signal{src, ts, v3cfg, v4cfg, dep, css, postcss},
	}
	s.TailwindVersion = resolveTailwindVersion(depVersion, v4cfg.Active, v3cfg.Active)
	return s
}

// resolveTailwindVersion applies the version priority: the manifest's
// declared version wins outright, then the v4-style config, then a v3-style
// config file.
func resolveTailwindVersion(depVersion string, hasV4Config, hasV3Config bool) string {
	if depVersion != "" {
		if major := majorVersion(depVersion); major != "" {
			switch major {
			case "4":
				return "v4"
			case "3":
				return "v3"
			}
		}
		// Unparseable range: fall back to the raw containment rule.
		if strings.Contains(depVersion, "4.") {
			return "v4"
		}
		if strings.Contains(depVersion, "3.") {
			return "v3"
		}
	}
	if hasV4Config {
		return "v4"
	}
	if hasV3Config {
		return "v3"
	}
	return ""
}

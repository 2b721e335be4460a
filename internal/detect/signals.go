package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// v3ConfigNames are the equivalent spellings of a Tailwind v3 config file.
var v3ConfigNames = []string{
	"tailwind.config.js",
	"tailwind.config.ts",
	"tailwind.config.mjs",
	"tailwind.config.cjs",
}

// v4ConfigName is the PostCSS config create-next-app writes for Tailwind v4.
const v4ConfigName = "postcss.config.mjs"

// postcssConfigNames are scanned for a textual Tailwind reference, covering
// v3-era setups that register Tailwind as a PostCSS plugin.
var postcssConfigNames = []string{
	"postcss.config.mjs",
	"postcss.config.js",
	"postcss.config.cjs",
}

// stylesheetCandidates are scanned in order; the first file containing a
// Tailwind directive wins.
var stylesheetCandidates = []string{
	"src/app/globals.css",
	"app/globals.css",
	"src/styles/globals.css",
	"styles/globals.css",
}

func srcDirSignal(root string) Signal {
	info, err := os.Stat(filepath.Join(root, "src"))
	if err == nil && info.IsDir() {
		return Signal{Name: SignalSrcDir, Active: true, Reason: "src/ directory exists"}
	}
	return Signal{Name: SignalSrcDir, Reason: "no src/ directory"}
}

func typescriptSignal(root string) Signal {
	if fileExists(filepath.Join(root, "tsconfig.json")) {
		return Signal{Name: SignalTypeScript, Active: true, Reason: "tsconfig.json exists"}
	}
	return Signal{Name: SignalTypeScript, Reason: "no tsconfig.json"}
}

func tailwindV3ConfigSignal(root string) Signal {
	for _, name := range v3ConfigNames {
		if fileExists(filepath.Join(root, name)) {
			return Signal{Name: SignalTailwindV3Config, Active: true, Reason: name + " exists"}
		}
	}
	return Signal{Name: SignalTailwindV3Config, Reason: "no tailwind.config.* file"}
}

// tailwindV4ConfigSignal requires the v4 config file to actually mention
// Tailwind, guarding against an unrelated file of the same name.
func tailwindV4ConfigSignal(root string) Signal {
	path := filepath.Join(root, v4ConfigName)
	if !fileExists(path) {
		return Signal{Name: SignalTailwindV4Config, Reason: "no " + v4ConfigName}
	}
	if fileContains(path, "tailwindcss") {
		return Signal{Name: SignalTailwindV4Config, Active: true, Reason: v4ConfigName + " references tailwindcss"}
	}
	return Signal{Name: SignalTailwindV4Config, Reason: v4ConfigName + " exists but does not reference tailwindcss"}
}

// tailwindDependencySignal parses package.json tolerantly; a missing or
// malformed manifest downgrades the signal to absent.
func tailwindDependencySignal(root string) (Signal, string) {
	data, err := os.ReadFile(filepath.Join(root, "package.json"))
	if err != nil {
		return Signal{Name: SignalTailwindDep, Reason: "no readable package.json"}, ""
	}

	var manifest struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Signal{Name: SignalTailwindDep, Reason: "package.json is not valid JSON"}, ""
	}

	if v, ok := manifest.Dependencies["tailwindcss"]; ok {
		return Signal{Name: SignalTailwindDep, Active: true, Reason: fmt.Sprintf("dependencies declare tailwindcss %s", v)}, v
	}
	if v, ok := manifest.DevDependencies["tailwindcss"]; ok {
		return Signal{Name: SignalTailwindDep, Active: true, Reason: fmt.Sprintf("devDependencies declare tailwindcss %s", v)}, v
	}
	return Signal{Name: SignalTailwindDep, Reason: "package.json does not declare tailwindcss"}, ""
}

func tailwindStylesheetSignal(root string) Signal {
	for _, rel := range stylesheetCandidates {
		path := filepath.Join(root, filepath.FromSlash(rel))
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		content := string(data)
		if strings.Contains(content, `@import "tailwindcss"`) || strings.Contains(content, "@tailwind") {
			return Signal{Name: SignalTailwindCSS, Active: true, Reason: rel + " imports tailwindcss"}
		}
	}
	return Signal{Name: SignalTailwindCSS, Reason: "no stylesheet imports tailwindcss"}
}

func tailwindPostcssRefSignal(root string) Signal {
	for _, name := range postcssConfigNames {
		path := filepath.Join(root, name)
		if fileExists(path) && fileContains(path, "tailwindcss") {
			return Signal{Name: SignalTailwindPostcss, Active: true, Reason: name + " references tailwindcss"}
		}
	}
	return Signal{Name: SignalTailwindPostcss, Reason: "no postcss config references tailwindcss"}
}

// majorVersion extracts the major version from an npm range string like
// "^4.1.3" or "~3.4 || ^4". Returns "" when nothing parseable remains.
func majorVersion(rangeStr string) string {
	s := strings.TrimSpace(rangeStr)
	s = strings.Split(s, "||")[0]
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	s = strings.TrimLeft(fields[0], "^~><=v ")
	if s == "" {
		return ""
	}
	// npm ranges allow partial versions like "4"; pad for semver.
	switch strings.Count(s, ".") {
	case 0:
		s += ".0.0"
	case 1:
		s += ".0"
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d", v.Major())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func fileContains(path, marker string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), marker)
}

package scaffold

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// TextEdit is one named, best-effort textual substitution. An edit that
// finds nothing to change reports Applied=false; it never fails the patch.
type TextEdit struct {
	Name  string
	Apply func(content string) (string, bool)
}

// EditResult records whether a single edit matched.
type EditResult struct {
	Name    string
	Applied bool
}

// PatchResult reports what the layout patch did, so the caller can log
// warnings without this package printing anything itself.
type PatchResult struct {
	Target string

	// Skipped is a human-readable reason when no edits were attempted
	// (file missing, or already patched).
	Skipped string

	Edits []EditResult
}

// ThemeProviderMarker is the idempotence guard for the layout patch.
const ThemeProviderMarker = "ThemeProvider"

const themeProviderImport = `import { ThemeProvider } from "@/components/theme-provider"`

var (
	importLine = regexp.MustCompile(`^\s*import\b`)
	importFrom = regexp.MustCompile(`\bfrom\s+["']`)
)

// layoutEdits are the three substitutions that wire the theme provider into
// a generated root layout. All are textual, not AST transforms.
var layoutEdits = []TextEdit{
	{
		Name:  "theme-provider-import",
		Apply: insertAfterLastImport(themeProviderImport),
	},
	{
		Name: "suppress-hydration-warning",
		Apply: func(content string) (string, bool) {
			if !strings.Contains(content, "<html") || strings.Contains(content, "suppressHydrationWarning") {
				return content, false
			}
			return strings.Replace(content, "<html", "<html suppressHydrationWarning", 1), true
		},
	},
	{
		Name: "wrap-children",
		Apply: func(content string) (string, bool) {
			if !strings.Contains(content, "{children}") {
				return content, false
			}
			wrapped := `<ThemeProvider attribute="class" defaultTheme="system" enableSystem>
          {children}
        </ThemeProvider>`
			return strings.Replace(content, "{children}", wrapped, 1), true
		},
	},
}

// PatchLayout wires the ThemeProvider into app/layout in place. It is a
// warned no-op when the layout file is missing or already mentions the
// provider. Individual edits that find nothing to match are recorded but do
// not fail the patch.
func PatchLayout(root string, useSrc, ts bool) (*PatchResult, error) {
	path := filepath.Join(BaseDir(root, useSrc), "app", "layout."+MarkupExt(ts))
	result := &PatchResult{Target: path}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Skipped = "layout file not found"
		return result, nil
	}

	content := string(data)
	if strings.Contains(content, ThemeProviderMarker) {
		result.Skipped = "layout already references ThemeProvider"
		return result, nil
	}

	for _, edit := range layoutEdits {
		var applied bool
		content, applied = edit.Apply(content)
		result.Edits = append(result.Edits, EditResult{Name: edit.Name, Applied: applied})
	}

	if err := atomicWrite(path, content); err != nil {
		return result, err
	}
	return result, nil
}

// insertAfterLastImport returns an edit that places line after the last
// import statement, or at the top of the file when none match. An import
// whose specifier list spans multiple lines ends at its from clause.
func insertAfterLastImport(line string) func(string) (string, bool) {
	return func(content string) (string, bool) {
		lines := strings.Split(content, "\n")
		last := -1
		for i := 0; i < len(lines); i++ {
			if !importLine.MatchString(lines[i]) {
				continue
			}
			last = i
			if strings.ContainsAny(lines[i], `"'`) {
				continue
			}
			for j := i + 1; j < len(lines); j++ {
				if importFrom.MatchString(lines[j]) {
					last, i = j, j
					break
				}
			}
		}

		if last < 0 {
			return line + "\n" + content, true
		}

		out := make([]string, 0, len(lines)+1)
		out = append(out, lines[:last+1]...)
		out = append(out, line)
		out = append(out, lines[last+1:]...)
		return strings.Join(out, "\n"), true
	}
}

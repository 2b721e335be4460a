package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHomepageBodiesDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, ts := range []bool{true, false} {
		for _, style := range []HomepageStyle{HomePlain, HomeTailwind, HomeShadcn} {
			body := homepageBody(ts, style)
			if seen[body] {
				t.Errorf("template ts=%v style=%v duplicates another body", ts, style)
			}
			seen[body] = true
		}
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct bodies, got %d", len(seen))
	}
}

func TestWriteHomepage(t *testing.T) {
	root := t.TempDir()
	if err := WriteHomepage(root, false, true, HomeShadcn); err != nil {
		t.Fatalf("WriteHomepage() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "app", "page.tsx"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "@/components/ui/button") {
		t.Error("shadcn body should import baseline components")
	}
	if !strings.Contains(content, "ReactElement") {
		t.Error("ts body should be typed")
	}
}

func TestWriteHomepageOverwrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "app", "page.jsx")
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte("// generated boilerplate"), 0644)

	if err := WriteHomepage(root, false, false, HomeTailwind); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "boilerplate") {
		t.Error("homepage should be overwritten")
	}
	if !strings.Contains(string(data), "className=") {
		t.Error("tailwind body should use utility classes")
	}
}

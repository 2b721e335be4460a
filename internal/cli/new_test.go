package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/company/nextstart/internal/config"
	"github.com/company/nextstart/internal/exitcodes"
	"github.com/company/nextstart/internal/pm"
)

// fakeRunner simulates the external tools. The create-next-app invocation
// materializes a minimal generated project so detection has real files to
// inspect.
type fakeRunner struct {
	calls       []string
	interactive []string
	failOn      string
	generate    func(dir string)
}

func (f *fakeRunner) Run(_ context.Context, _ string, argv ...string) error {
	line := strings.Join(argv, " ")
	f.calls = append(f.calls, line)
	if f.failOn != "" && strings.Contains(line, f.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func (f *fakeRunner) RunInteractive(_ context.Context, dir string, argv ...string) error {
	line := strings.Join(argv, " ")
	f.interactive = append(f.interactive, line)
	if f.failOn != "" && strings.Contains(line, f.failOn) {
		return errors.New("exit status 1")
	}
	if strings.Contains(line, "create-next-app") && f.generate != nil {
		f.generate(dir)
	}
	return nil
}

// generateV4Project writes the files create-next-app leaves behind for a
// TypeScript + src-dir + Tailwind v4 project.
func generateV4Project(t *testing.T, name string) func(dir string) {
	return func(dir string) {
		t.Helper()
		root := filepath.Join(dir, name)
		files := map[string]string{
			"package.json":        `{"name":"` + name + `","devDependencies":{"tailwindcss":"^4.1.0","@tailwindcss/postcss":"^4.1.0"}}`,
			"tsconfig.json":       "{}",
			"postcss.config.mjs":  `const config = { plugins: ["@tailwindcss/postcss"] };` + "\nexport default config;\n",
			"src/app/globals.css": `@import "tailwindcss";`,
			"src/app/layout.tsx": `import type { Metadata } from "next"
import "./globals.css"

export default function RootLayout({
  children,
}: Readonly<{ children: React.ReactNode }>) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  )
}
`,
			"src/app/page.tsx": "export default function Home() { return null }\n",
		}
		for rel, content := range files {
			path := filepath.Join(root, filepath.FromSlash(rel))
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func newTestApp(t *testing.T, runner *fakeRunner, baseDir string) *App {
	t.Helper()
	t.Setenv("NEXTSTART_CI", "1")
	t.Setenv("NO_COLOR", "1")
	app := NewApp("test", "none", "now")
	app.runner = runner
	app.baseDir = baseDir
	return app
}

func TestNewShadcnWithoutAuth(t *testing.T) {
	base := t.TempDir()
	runner := &fakeRunner{generate: generateV4Project(t, "demo")}
	app := newTestApp(t, runner, base)

	cfg := &config.Project{
		Name:           "demo",
		PackageManager: pm.Pnpm,
		Shadcn:         true,
		NextAuth:       false,
		Turbopack:      true,
	}
	if err := app.runNew(context.Background(), cfg); err != nil {
		t.Fatalf("runNew() error: %v", err)
	}

	root := filepath.Join(base, "demo")

	// Generator invocation carries the pm and turbopack flags.
	if len(runner.interactive) == 0 ||
		runner.interactive[0] != "npx create-next-app@latest demo --use-pnpm --turbopack" {
		t.Errorf("generator call = %v", runner.interactive)
	}

	// v4 project: legacy shim written at root.
	if _, err := os.Stat(filepath.Join(root, "tailwind.config.js")); err != nil {
		t.Error("tailwind.config.js shim missing")
	}

	// shadcn init ran interactively; components, theming and extras ran silently.
	joined := strings.Join(runner.interactive, "\n")
	if !strings.Contains(joined, "shadcn@latest init") {
		t.Errorf("shadcn init not run: %v", runner.interactive)
	}
	silent := strings.Join(runner.calls, "\n")
	for _, want := range []string{
		"shadcn@latest add button card input label dropdown-menu",
		"pnpm add next-themes",
		"pnpm add clsx tailwind-merge class-variance-authority lucide-react",
	} {
		if !strings.Contains(silent, want) {
			t.Errorf("missing command %q in %v", want, runner.calls)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "src", "components", "theme-provider.tsx")); err != nil {
		t.Error("theme provider missing")
	}
	layout, _ := os.ReadFile(filepath.Join(root, "src", "app", "layout.tsx"))
	if !strings.Contains(string(layout), "ThemeProvider") {
		t.Error("layout not patched")
	}

	// Auth must be untouched.
	if strings.Contains(silent, "next-auth") || strings.Contains(silent, "auth secret") {
		t.Errorf("auth commands ran: %v", runner.calls)
	}
	if _, err := os.Stat(filepath.Join(root, "src", "lib", "auth.ts")); err == nil {
		t.Error("auth config should not be written")
	}
	if _, err := os.Stat(filepath.Join(root, ".env.local")); err == nil {
		t.Error(".env.local should not be written")
	}

	// Homepage rewritten with the component variant.
	page, _ := os.ReadFile(filepath.Join(root, "src", "app", "page.tsx"))
	if !strings.Contains(string(page), "@/components/ui/button") {
		t.Error("homepage should use the shadcn variant")
	}
}

func TestGeneratorFailureIsFatal(t *testing.T) {
	runner := &fakeRunner{failOn: "create-next-app"}
	app := newTestApp(t, runner, t.TempDir())

	cfg := &config.Project{Name: "demo", PackageManager: pm.Npm}
	err := app.runNew(context.Background(), cfg)

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want ExitError", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("no further commands may run after generator failure: %v", runner.calls)
	}
}

func TestAuthFailureDoesNotAbortPipeline(t *testing.T) {
	base := t.TempDir()
	runner := &fakeRunner{generate: generateV4Project(t, "demo"), failOn: "next-auth@beta"}
	app := newTestApp(t, runner, base)

	cfg := &config.Project{
		Name:           "demo",
		PackageManager: pm.Npm,
		Shadcn:         true,
		NextAuth:       true,
	}
	if err := app.runNew(context.Background(), cfg); err != nil {
		t.Fatalf("runNew() should not fail on a feature error, got %v", err)
	}

	// The shadcn feature's earlier writes survive.
	root := filepath.Join(base, "demo")
	if _, err := os.Stat(filepath.Join(root, "src", "components", "theme-provider.tsx")); err != nil {
		t.Error("prior feature writes should remain on disk")
	}
}

func TestCollectProjectFromPresetAndFlags(t *testing.T) {
	t.Setenv("NEXTSTART_CI", "1")
	dir := t.TempDir()
	preset := filepath.Join(dir, "preset.yml")
	os.WriteFile(preset, []byte("name: from-preset\npackageManager: yarn\nshadcn: true\n"), 0644)

	app := NewApp("test", "none", "now")
	cmd := app.newNewCmd()
	cmd.Flags().Set("preset", preset)
	cmd.Flags().Set("nextauth", "true")

	opts := &newOptions{preset: preset, nextauth: true}
	cfg, err := app.collectProject(cmd, []string{"cli-name"}, opts)
	if err != nil {
		t.Fatalf("collectProject() error: %v", err)
	}

	if cfg.Name != "cli-name" {
		t.Errorf("Name = %q, argument should override preset", cfg.Name)
	}
	if cfg.PackageManager != pm.Yarn {
		t.Errorf("PackageManager = %q, want yarn from preset", cfg.PackageManager)
	}
	if !cfg.Shadcn || !cfg.NextAuth {
		t.Errorf("feature flags = %v/%v, want true/true", cfg.Shadcn, cfg.NextAuth)
	}
}

func TestPromptErrorMapsUserAbort(t *testing.T) {
	err := promptError(fmt.Errorf("collecting answers: %w", huh.ErrUserAborted))
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want ExitError", err)
	}
	if exitErr.Code != exitcodes.Cancelled {
		t.Errorf("Code = %d, want %d", exitErr.Code, exitcodes.Cancelled)
	}

	plain := errors.New("terminal broke")
	if got := promptError(plain); got != plain {
		t.Errorf("unrelated errors must pass through, got %v", got)
	}
}

func TestCollectProjectRequiresNameNonInteractive(t *testing.T) {
	t.Setenv("NEXTSTART_CI", "1")
	app := NewApp("test", "none", "now")
	cmd := app.newNewCmd()

	_, err := app.collectProject(cmd, nil, &newOptions{})
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want ExitError", err)
	}
}

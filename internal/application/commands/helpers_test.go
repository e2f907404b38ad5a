package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cadex/internal/adapters/filesystem"
	"cadex/internal/adapters/sqlite"
	"cadex/internal/ignore"
	"cadex/internal/ports"
)

func testDeps() Deps {
	return Deps{
		OpenStore: func(root string) (ports.IndexStore, error) {
			return sqlite.Load(root)
		},
		OpenMemory: func() (ports.IndexStore, error) {
			return sqlite.NewMemory()
		},
		NewScanner: func(root string, matcher *ignore.Matcher) ports.TreeScanner {
			return filesystem.NewScanner(root, matcher)
		},
		Inspector: filesystem.NewInspector(),
		Janitor:   filesystem.NewJanitor(),
	}
}

// newTestRepo initializes a fresh repository in a temp directory.
func newTestRepo(t *testing.T) (string, Deps) {
	t.Helper()
	root := t.TempDir()
	deps := testDeps()
	if _, err := NewInitCommand(deps, root).Execute(context.Background()); err != nil {
		t.Fatalf("failed to initialize repository: %v", err)
	}
	return root, deps
}

func writeFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directories for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// runUpdate brings the index in sync with the filesystem.
func runUpdate(t *testing.T, deps Deps, root string) *UpdateResult {
	t.Helper()
	result, err := NewUpdateCommand(deps, root, root, "", false).Execute(context.Background())
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	return result
}

func lastLine(t *testing.T, lines []string) string {
	t.Helper()
	if len(lines) == 0 {
		t.Fatal("expected output lines, got none")
	}
	return lines[len(lines)-1]
}

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if l == want {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func mkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
}

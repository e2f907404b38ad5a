package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}
}

func TestJanitor_RemoveEmptyParents(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "a/b/c")
	writeFile(t, root, "a/keep.txt", "k")

	// Pretend a file was just moved out of a/b/c.
	err := NewJanitor().RemoveEmptyParents(filepath.Join(root, "a/b/c/moved.txt"), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "a/b")); !os.IsNotExist(err) {
		t.Error("expected a/b to be removed")
	}
	if _, err := os.Stat(filepath.Join(root, "a")); err != nil {
		t.Error("expected a to survive, it still holds keep.txt")
	}
}

func TestJanitor_RemoveEmptyParentsStopsAtRoot(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "x")

	err := NewJanitor().RemoveEmptyParents(filepath.Join(root, "x/moved.txt"), root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(root); err != nil {
		t.Errorf("expected root to survive: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "x")); !os.IsNotExist(err) {
		t.Error("expected x to be removed")
	}
}

func TestJanitor_RemoveAllEmpty(t *testing.T) {
	root := t.TempDir()
	// a/b/c is empty all the way down; removing c empties b, then a.
	mkdirs(t, root, "a/b/c", "full")
	writeFile(t, root, "full/keep.txt", "k")
	mkdirs(t, root, ".cadex/pruneyard/empty")

	removed, err := NewJanitor().RemoveAllEmpty(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 3 {
		t.Errorf("expected 3 directories removed, got %d", removed)
	}

	if _, err := os.Stat(filepath.Join(root, "a")); !os.IsNotExist(err) {
		t.Error("expected a removed")
	}
	if _, err := os.Stat(filepath.Join(root, "full")); err != nil {
		t.Error("expected full to survive")
	}
	if _, err := os.Stat(filepath.Join(root, ".cadex/pruneyard/empty")); err != nil {
		t.Error("expected metadata directory contents untouched")
	}

	// Second sweep finds nothing.
	removed, err = NewJanitor().RemoveAllEmpty(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 0 {
		t.Errorf("expected 0 directories on second sweep, got %d", removed)
	}
}

func TestJanitor_CountFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "one.txt", "1")
	writeFile(t, root, "sub/two.txt", "2")
	mkdirs(t, root, "empty")

	count, err := NewJanitor().CountFiles(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 files, got %d", count)
	}
}

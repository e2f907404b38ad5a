package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cadex/internal/config"
	"cadex/internal/ports"
)

// Janitor removes directories left empty by prune and restore operations.
type Janitor struct{}

var _ ports.Janitor = Janitor{}

// NewJanitor returns a filesystem janitor.
func NewJanitor() Janitor {
	return Janitor{}
}

// RemoveEmptyParents walks upward from path's parent toward root, removing
// each directory as long as it is empty. It stops at the first non-empty
// directory or at root.
func (Janitor) RemoveEmptyParents(path, root string) error {
	parent := filepath.Dir(path)
	for parent != root && strings.HasPrefix(parent, root+string(filepath.Separator)) {
		entries, err := os.ReadDir(parent)
		if err != nil {
			return nil
		}
		if len(entries) > 0 {
			return nil
		}
		if err := os.Remove(parent); err != nil {
			return fmt.Errorf("failed to remove empty directory %s: %w", parent, err)
		}
		parent = filepath.Dir(parent)
	}
	return nil
}

// RemoveAllEmpty sweeps the whole tree under root, collecting every
// currently-empty directory and removing them, until a full pass removes
// nothing. The fixed-point loop is needed because removing a child can make
// its parent newly empty; it also keeps deep trees off the stack. The
// metadata directory is never touched.
func (Janitor) RemoveAllEmpty(root string) (int, error) {
	removed := 0
	for {
		var empties []string

		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if !d.IsDir() || p == root {
				return nil
			}

			rel, relErr := filepath.Rel(root, p)
			if relErr != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)
			if rel == config.MetaDir || strings.HasPrefix(rel, config.MetaDir+"/") {
				return fs.SkipDir
			}

			entries, readErr := os.ReadDir(p)
			if readErr == nil && len(entries) == 0 {
				empties = append(empties, p)
			}
			return nil
		})
		if err != nil {
			return removed, err
		}

		if len(empties) == 0 {
			return removed, nil
		}

		n := 0
		for _, dir := range empties {
			if os.Remove(dir) == nil {
				n++
			}
		}
		if n == 0 {
			return removed, nil
		}
		removed += n
	}
}

// CountFiles counts regular files under dir recursively.
func (Janitor) CountFiles(dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count files in %s: %w", dir, err)
	}
	return count, nil
}

package application

import (
	"os"
	"path/filepath"
	"strings"

	"cadex/internal/config"
)

// FindRoot walks upward from dir until a directory containing the metadata
// directory is found.
func FindRoot(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		info, err := os.Stat(filepath.Join(current, config.MetaDir))
		if err == nil && info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", ErrNotRepository
		}
		current = parent
	}
}

// joinRoot resolves a repository-relative path back to an absolute one.
func joinRoot(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// RelFromRoot converts an absolute path into the repository-relative,
// forward-slash normalized form. The root itself maps to the empty string.
func RelFromRoot(root, abs string) (string, error) {
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &OutsideRepositoryError{Path: abs}
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		rel = ""
	}
	return rel, nil
}

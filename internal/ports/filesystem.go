package ports

import (
	"cadex/internal/domain"
	"cadex/internal/ignore"
)

// FileInspector provides the stat and hash primitives for one file.
type FileInspector interface {
	FileSize(path string) (uint64, error)
	ModifiedTime(path string) (uint64, error)
	SHA256(path string) (string, error)

	// NewEntry stats and hashes path, recording relPath as the entry key.
	NewEntry(path, relPath string) (domain.FileEntry, error)

	// HasChanged reports whether the file at path differs from the stored
	// entry. Only size and modified time are compared; the content hash is
	// deliberately not recomputed.
	HasChanged(entry domain.FileEntry, path string) (bool, error)
}

// TreeScanner walks a subtree of the repository, applying an ignore matcher.
type TreeScanner interface {
	// Scan walks target (an absolute path under the repository root). When
	// recursive is false the walk stops at depth 1. Entries that fail to
	// stat or read are skipped with a warning; the walk continues.
	Scan(target string, recursive, collectIgnored bool) (*domain.ScanResult, error)
}

// ScannerFactory builds a TreeScanner bound to a repository root.
type ScannerFactory func(root string, matcher *ignore.Matcher) TreeScanner

// StoreOpener opens the durable IndexStore of the repository at root.
type StoreOpener func(root string) (IndexStore, error)

// Janitor removes directories left empty by prune and restore.
type Janitor interface {
	// RemoveEmptyParents walks upward from path's parent toward root,
	// removing each empty directory, stopping at the first non-empty one
	// or at root.
	RemoveEmptyParents(path, root string) error

	// RemoveAllEmpty repeatedly sweeps the whole tree (metadata directory
	// excluded) until a pass removes nothing, and returns the total count.
	RemoveAllEmpty(root string) (int, error)

	// CountFiles counts regular files under dir recursively.
	CountFiles(dir string) (int, error)
}

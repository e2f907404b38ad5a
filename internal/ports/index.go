package ports

import "cadex/internal/domain"

// IndexStore is the durable path→FileEntry mapping with a secondary hash
// lookup. Paths are relative to the repository root and forward-slash
// normalized; callers guarantee the form, the store performs no validation.
type IndexStore interface {
	// Upsert inserts or replaces the entry keyed by its path.
	Upsert(entry domain.FileEntry) error

	// Remove deletes the entry for path if present; absent is not an error.
	Remove(path string) error

	// Get returns the entry for path, or nil when absent.
	Get(path string) (*domain.FileEntry, error)

	// ListDir returns entries whose parent directory equals dir exactly.
	// The repository root is the empty string; "." and stray slashes
	// normalize to it.
	ListDir(dir string) ([]domain.FileEntry, error)

	// ListDirRecursive returns entries equal to dir or nested under dir/.
	// Prefix matching is segment-aware: "foo" does not cover "foobar".
	ListDirRecursive(dir string) ([]domain.FileEntry, error)

	// FindByHash returns all entries with exactly that content hash.
	FindByHash(hash string) ([]domain.FileEntry, error)

	// Save persists the store into root's metadata directory. For stores
	// already bound to durable storage this is a no-op; transient stores
	// do not exist on disk until saved.
	Save(root string) error

	Close() error
}

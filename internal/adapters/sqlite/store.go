package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	gopath "path"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"cadex/internal/config"
	"cadex/internal/domain"
	"cadex/internal/ports"
)

// Store implements ports.IndexStore on an embedded SQLite table.
type Store struct {
	db *sql.DB
	// backed is true when the store was opened from the metadata directory;
	// such stores commit per statement and Save is a no-op. In-memory
	// stores exist on disk only after an explicit Save.
	backed bool
}

var _ ports.IndexStore = (*Store)(nil)

// NewMemory opens a transient in-memory store, used by init and by tests.
func NewMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory database: %w", err)
	}
	// Each pooled connection would otherwise see its own empty :memory:
	// database.
	db.SetMaxOpenConns(1)
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Load opens the durable store under root's metadata directory, creating
// the directory and schema as needed. A nonexistent store loads empty.
func Load(root string) (*Store, error) {
	metaDir := filepath.Join(root, config.MetaDir)
	if err := os.MkdirAll(metaDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create metadata directory: %w", err)
	}

	dbPath := filepath.Join(metaDir, config.IndexFile)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, backed: true}, nil
}

// initSchema applies pragmas and schema in a single batch.
func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS files (
			path TEXT PRIMARY KEY,
			num_bytes INTEGER NOT NULL,
			modified INTEGER NOT NULL,
			sha256 TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_files_sha256 ON files(sha256);
	`)
	if err != nil {
		return fmt.Errorf("failed to setup index database: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save persists an in-memory store into root's metadata directory. For
// file-backed stores every statement is already durable.
func (s *Store) Save(root string) error {
	if s.backed {
		return nil
	}

	metaDir := filepath.Join(root, config.MetaDir)
	if err := os.MkdirAll(metaDir, 0o755); err != nil {
		return fmt.Errorf("failed to create metadata directory: %w", err)
	}

	dbPath := filepath.Join(metaDir, config.IndexFile)
	// VACUUM INTO refuses to overwrite an existing file.
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace index database: %w", err)
	}
	if _, err := s.db.Exec(`VACUUM INTO ?`, dbPath); err != nil {
		return fmt.Errorf("failed to save index database: %w", err)
	}
	return nil
}

// Upsert inserts or replaces the entry keyed by its path.
func (s *Store) Upsert(entry domain.FileEntry) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO files (path, num_bytes, modified, sha256)
		VALUES (?, ?, ?, ?)
	`, entry.Path, entry.NumBytes, entry.Modified, entry.SHA256)
	if err != nil {
		return fmt.Errorf("failed to upsert file entry: %w", err)
	}
	return nil
}

// Remove deletes the entry for path if present.
func (s *Store) Remove(path string) error {
	if _, err := s.db.Exec(`DELETE FROM files WHERE path = ?`, path); err != nil {
		return fmt.Errorf("failed to remove file entry: %w", err)
	}
	return nil
}

// Get returns the entry for path, or nil when absent.
func (s *Store) Get(path string) (*domain.FileEntry, error) {
	var entry domain.FileEntry
	err := s.db.QueryRow(`
		SELECT path, num_bytes, modified, sha256 FROM files WHERE path = ?
	`, path).Scan(&entry.Path, &entry.NumBytes, &entry.Modified, &entry.SHA256)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get file entry: %w", err)
	}
	return &entry, nil
}

// ListDir returns entries whose parent directory equals dir exactly.
func (s *Store) ListDir(dir string) ([]domain.FileEntry, error) {
	normalized := normalizeDir(dir)

	all, err := s.queryAll()
	if err != nil {
		return nil, err
	}

	var result []domain.FileEntry
	for _, entry := range all {
		parent := gopath.Dir(entry.Path)
		if parent == "." {
			parent = ""
		}
		if parent == normalized {
			result = append(result, entry)
		}
	}
	return result, nil
}

// ListDirRecursive returns entries equal to dir or nested under dir/.
func (s *Store) ListDirRecursive(dir string) ([]domain.FileEntry, error) {
	normalized := normalizeDir(dir)

	all, err := s.queryAll()
	if err != nil {
		return nil, err
	}
	if normalized == "" {
		return all, nil
	}

	prefix := normalized + "/"
	var result []domain.FileEntry
	for _, entry := range all {
		if entry.Path == normalized || strings.HasPrefix(entry.Path, prefix) {
			result = append(result, entry)
		}
	}
	return result, nil
}

// FindByHash returns all entries with exactly that content hash.
func (s *Store) FindByHash(hash string) ([]domain.FileEntry, error) {
	rows, err := s.db.Query(`
		SELECT path, num_bytes, modified, sha256 FROM files
		WHERE sha256 = ? ORDER BY path
	`, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to query files by hash: %w", err)
	}
	return scanEntries(rows)
}

func (s *Store) queryAll() ([]domain.FileEntry, error) {
	rows, err := s.db.Query(`
		SELECT path, num_bytes, modified, sha256 FROM files ORDER BY path
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query files: %w", err)
	}
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]domain.FileEntry, error) {
	defer rows.Close()

	var result []domain.FileEntry
	for rows.Next() {
		var entry domain.FileEntry
		if err := rows.Scan(&entry.Path, &entry.NumBytes, &entry.Modified, &entry.SHA256); err != nil {
			return nil, fmt.Errorf("failed to read file entry: %w", err)
		}
		result = append(result, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file entries: %w", err)
	}
	return result, nil
}

// normalizeDir maps ".", "/" and stray slashes to the canonical form where
// the repository root is the empty string.
func normalizeDir(dir string) string {
	trimmed := strings.Trim(dir, "/")
	if trimmed == "." {
		return ""
	}
	return trimmed
}

package filesystem

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"cadex/internal/domain"
	"cadex/internal/ports"
)

// Inspector implements ports.FileInspector on the local filesystem.
type Inspector struct{}

var _ ports.FileInspector = Inspector{}

// NewInspector returns a filesystem-backed inspector.
func NewInspector() Inspector {
	return Inspector{}
}

// FileSize returns the size of the file in bytes.
func (Inspector) FileSize(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return uint64(info.Size()), nil
}

// ModifiedTime returns the last-modified time in milliseconds since epoch.
func (Inspector) ModifiedTime(path string) (uint64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return uint64(info.ModTime().UnixMilli()), nil
}

// SHA256 returns the lowercase hex digest of the full file content.
func (Inspector) SHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// NewEntry stats and hashes the file at path, recording relPath as the key.
func (i Inspector) NewEntry(path, relPath string) (domain.FileEntry, error) {
	size, err := i.FileSize(path)
	if err != nil {
		return domain.FileEntry{}, err
	}
	modified, err := i.ModifiedTime(path)
	if err != nil {
		return domain.FileEntry{}, err
	}
	hash, err := i.SHA256(path)
	if err != nil {
		return domain.FileEntry{}, err
	}
	return domain.FileEntry{
		Path:     relPath,
		NumBytes: size,
		Modified: modified,
		SHA256:   hash,
	}, nil
}

// HasChanged compares size and modified time against the stored entry. The
// content hash is deliberately not recomputed.
func (i Inspector) HasChanged(entry domain.FileEntry, path string) (bool, error) {
	size, err := i.FileSize(path)
	if err != nil {
		return false, err
	}
	modified, err := i.ModifiedTime(path)
	if err != nil {
		return false, err
	}
	return size != entry.NumBytes || modified != entry.Modified, nil
}

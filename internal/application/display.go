package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"cadex/internal/domain"
)

// Marker is the single-character status prefix printed before an entry.
type Marker string

const (
	MarkerAdded     Marker = "+"
	MarkerUpdated   Marker = "U"
	MarkerDeleted   Marker = "-"
	MarkerUnchanged Marker = "="
	MarkerIgnored   Marker = "I"
)

// FormatEntry renders an entry as right-aligned size, right-aligned
// modified time, hash, then path.
func FormatEntry(entry domain.FileEntry) string {
	return fmt.Sprintf("%10d %15d %s %s",
		entry.NumBytes, entry.Modified, entry.SHA256, entry.Path)
}

// DisplayContext renders repository-relative paths relative to the caller's
// working directory. This is a pure presentation transform: comparison logic
// always uses repository-relative paths, never display paths.
type DisplayContext struct {
	root    string
	workDir string
}

// NewDisplayContext binds a display context to the repository root and the
// caller's working directory.
func NewDisplayContext(root, workDir string) *DisplayContext {
	return &DisplayContext{root: root, workDir: workDir}
}

// Rel returns the display form of a repository-relative path. Paths outside
// the working directory are shown relative to the repository root instead.
func (d *DisplayContext) Rel(relPath string) string {
	full := filepath.Join(d.root, filepath.FromSlash(relPath))
	rel, err := filepath.Rel(d.workDir, full)
	if err != nil || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || rel == ".." {
		return relPath
	}
	return filepath.ToSlash(rel)
}

// FormatEntry renders an entry with its path in display form.
func (d *DisplayContext) FormatEntry(entry domain.FileEntry) string {
	entry.Path = d.Rel(entry.Path)
	return FormatEntry(entry)
}

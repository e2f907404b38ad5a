package application

import (
	"fmt"
	"path/filepath"
	"testing"

	"cadex/internal/domain"
)

func TestFormatEntry(t *testing.T) {
	entry := domain.FileEntry{Path: "docs/a.txt", NumBytes: 42, Modified: 1700000000000, SHA256: "deadbeef"}

	got := FormatEntry(entry)
	want := fmt.Sprintf("%10d %15d deadbeef docs/a.txt", 42, 1700000000000)
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestDisplayContext_Rel(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name    string
		workDir string
		relPath string
		want    string
	}{
		{
			name:    "working at root",
			workDir: root,
			relPath: "docs/a.txt",
			want:    "docs/a.txt",
		},
		{
			name:    "working in subdirectory",
			workDir: filepath.Join(root, "docs"),
			relPath: "docs/a.txt",
			want:    "a.txt",
		},
		{
			name:    "working deeper than the entry",
			workDir: filepath.Join(root, "docs", "sub"),
			relPath: "docs/a.txt",
			want:    "docs/a.txt",
		},
		{
			name:    "nested entry from subdirectory",
			workDir: filepath.Join(root, "docs"),
			relPath: "docs/sub/b.txt",
			want:    "sub/b.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDisplayContext(root, tt.workDir)
			if got := d.Rel(tt.relPath); got != tt.want {
				t.Errorf("Rel(%q) from %q = %q, want %q", tt.relPath, tt.workDir, got, tt.want)
			}
		})
	}
}

func TestDisplayContext_FormatEntry(t *testing.T) {
	root := t.TempDir()
	d := NewDisplayContext(root, filepath.Join(root, "docs"))

	entry := domain.FileEntry{Path: "docs/a.txt", NumBytes: 1, Modified: 2, SHA256: "x"}
	got := d.FormatEntry(entry)
	want := fmt.Sprintf("%10d %15d x a.txt", 1, 2)
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if entry.Path != "docs/a.txt" {
		t.Errorf("FormatEntry must not mutate the caller's entry, got %q", entry.Path)
	}
}

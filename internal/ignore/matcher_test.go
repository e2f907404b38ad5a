package ignore

import "testing"

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{
			name:     "exact file name",
			patterns: []string{".DS_Store"},
			path:     ".DS_Store",
			want:     true,
		},
		{
			name:     "file name at depth",
			patterns: []string{".DS_Store"},
			path:     "photos/2024/.DS_Store",
			want:     true,
		},
		{
			name:     "extension glob at root",
			patterns: []string{"*.log"},
			path:     "debug.log",
			want:     true,
		},
		{
			name:     "extension glob at depth",
			patterns: []string{"*.log"},
			path:     "var/logs/debug.log",
			want:     true,
		},
		{
			name:     "extension glob no match",
			patterns: []string{"*.log"},
			path:     "debug.txt",
			want:     false,
		},
		{
			name:     "directory pattern matches file inside",
			patterns: []string{"node_modules/"},
			path:     "node_modules/lodash/index.js",
			want:     true,
		},
		{
			name:     "directory pattern matches at depth",
			patterns: []string{"node_modules/"},
			path:     "web/client/node_modules/react/index.js",
			want:     true,
		},
		{
			name:     "directory pattern matches the directory itself",
			patterns: []string{"node_modules/"},
			path:     "node_modules/",
			want:     true,
		},
		{
			name:     "directory pattern matches nested directory itself",
			patterns: []string{"node_modules/"},
			path:     "web/client/node_modules/",
			want:     true,
		},
		{
			name:     "bare name pattern matches a directory of that name",
			patterns: []string{"build"},
			path:     "build/",
			want:     true,
		},
		{
			name:     "directory pattern does not match similar prefix",
			patterns: []string{"build/"},
			path:     "builder/main.go",
			want:     false,
		},
		{
			name:     "directory pattern does not match file of same name",
			patterns: []string{"cache/"},
			path:     "docs/cache",
			want:     false,
		},
		{
			name:     "glob directory pattern",
			patterns: []string{"*cache/"},
			path:     "proj/.mypy_cache/mod.json",
			want:     true,
		},
		{
			name:     "nested directory pattern",
			patterns: []string{"target/debug/"},
			path:     "crates/app/target/debug/deps/lib.rlib",
			want:     true,
		},
		{
			name:     "nested directory pattern partial no match",
			patterns: []string{"target/debug/"},
			path:     "crates/app/target/release/deps/lib.rlib",
			want:     false,
		},
		{
			name:     "full path glob",
			patterns: []string{"docs/**/*.pdf"},
			path:     "docs/manuals/v2/guide.pdf",
			want:     true,
		},
		{
			name:     "full path glob outside subtree",
			patterns: []string{"docs/**/*.pdf"},
			path:     "books/guide.pdf",
			want:     false,
		},
		{
			name:     "malformed glob never matches",
			patterns: []string{"["},
			path:     "[",
			want:     false,
		},
		{
			name:     "malformed glob does not break later patterns",
			patterns: []string{"[", "*.tmp"},
			path:     "scratch.tmp",
			want:     true,
		},
		{
			name:     "no patterns",
			patterns: nil,
			path:     "anything.txt",
			want:     false,
		},
		{
			name:     "metadata directory always ignored",
			patterns: nil,
			path:     ".cadex",
			want:     true,
		},
		{
			name:     "metadata directory contents always ignored",
			patterns: nil,
			path:     ".cadex/index.db",
			want:     true,
		},
		{
			name:     "nested metadata directory ignored",
			patterns: nil,
			path:     "sub/.cadex/index.db",
			want:     true,
		},
		{
			name:     "metadata-like prefix not ignored",
			patterns: nil,
			path:     ".cadexfoo/file.txt",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(tt.patterns)
			if got := m.Match(tt.path); got != tt.want {
				t.Errorf("Match(%q) with patterns %v = %v, want %v", tt.path, tt.patterns, got, tt.want)
			}
		})
	}
}

func TestMatcher_DirectoryAncestor(t *testing.T) {
	// A trailing-slash pattern must ignore everything under any directory
	// of that name, regardless of depth, without leaking onto directories
	// whose names merely contain the pattern as a substring.
	m := NewMatcher([]string{".venv/"})

	ignored := []string{
		".venv/bin/python",
		"services/api/.venv/lib/site.py",
		"a/b/c/.venv/x",
	}
	for _, p := range ignored {
		if !m.Match(p) {
			t.Errorf("expected %q to be ignored", p)
		}
	}

	kept := []string{
		".venv-backup/bin/python",
		"my.venv2/file",
		".venv", // a plain file named .venv, not a directory entry
	}
	for _, p := range kept {
		if m.Match(p) {
			t.Errorf("expected %q not to be ignored", p)
		}
	}
}

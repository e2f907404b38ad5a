package domain

// FileEntry describes one tracked file.
type FileEntry struct {
	Path     string // relative path from the repository root, forward-slash normalized (primary key)
	NumBytes uint64 // file size in bytes
	Modified uint64 // last-modified time in milliseconds since epoch
	SHA256   string // lowercase hex digest of the full file content
}

// UpdateStats holds counts from an update run.
type UpdateStats struct {
	Added   int
	Updated int
	Removed int
	Skipped int
}

// Total returns the number of index mutations performed.
func (s UpdateStats) Total() int {
	return s.Added + s.Updated + s.Removed
}

// DedupGroup is the set of entries sharing one content hash.
type DedupGroup struct {
	SHA256 string
	Files  []FileEntry
}

// WastedBytes returns the space taken by all but one copy.
func (g DedupGroup) WastedBytes() uint64 {
	if len(g.Files) <= 1 {
		return 0
	}
	return g.Files[0].NumBytes * uint64(len(g.Files)-1)
}

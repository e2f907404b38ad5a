package commands

import (
	"context"
	"fmt"
	"sort"

	"cadex/internal/application"
	"cadex/internal/domain"
)

// DuplicatesResult contains the dedup groups and totals
type DuplicatesResult struct {
	Lines       []string
	Groups      []domain.DedupGroup
	WastedBytes uint64
}

// DuplicatesCommand reports files with identical content
type DuplicatesCommand struct {
	deps    Deps
	Root    string
	WorkDir string
}

// NewDuplicatesCommand creates a new DuplicatesCommand
func NewDuplicatesCommand(deps Deps, root, workDir string) *DuplicatesCommand {
	return &DuplicatesCommand{deps: deps, Root: root, WorkDir: workDir}
}

// Execute groups every indexed entry by hash and reports groups of two or more
func (c *DuplicatesCommand) Execute(ctx context.Context) (*DuplicatesResult, error) {
	store, err := c.deps.OpenStore(c.Root)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	entries, err := store.ListDirRecursive("")
	if err != nil {
		return nil, err
	}

	byHash := make(map[string][]domain.FileEntry)
	for _, entry := range entries {
		byHash[entry.SHA256] = append(byHash[entry.SHA256], entry)
	}

	var groups []domain.DedupGroup
	for hash, files := range byHash {
		if len(files) > 1 {
			sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
			groups = append(groups, domain.DedupGroup{SHA256: hash, Files: files})
		}
	}

	if len(groups) == 0 {
		return &DuplicatesResult{Lines: []string{"No duplicate files found"}}, nil
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].SHA256 < groups[j].SHA256 })

	result := &DuplicatesResult{Groups: groups}
	totalFiles := 0
	for _, g := range groups {
		totalFiles += len(g.Files)
		result.WastedBytes += g.WastedBytes()
	}

	result.Lines = append(result.Lines,
		fmt.Sprintf("Found %d duplicate file(s) in %d group(s)", totalFiles, len(groups)))
	result.Lines = append(result.Lines,
		fmt.Sprintf("Potential space savings: %d bytes (%.2f MB)\n",
			result.WastedBytes, float64(result.WastedBytes)/1048576.0))

	disp := application.NewDisplayContext(c.Root, c.WorkDir)
	for _, g := range groups {
		result.Lines = append(result.Lines, fmt.Sprintf("Hash: %s", g.SHA256))
		for _, entry := range g.Files {
			result.Lines = append(result.Lines, "  "+disp.FormatEntry(entry))
		}
		result.Lines = append(result.Lines, "")
	}
	return result, nil
}

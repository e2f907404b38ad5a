package commands

import (
	"context"
	"sort"

	"cadex/internal/application"
)

// LsResult contains the rendered index listing
type LsResult struct {
	Lines []string
	Count int
}

// LsCommand lists indexed files under the working directory
type LsCommand struct {
	deps      Deps
	Root      string
	WorkDir   string
	Recursive bool
}

// NewLsCommand creates a new LsCommand
func NewLsCommand(deps Deps, root, workDir string, recursive bool) *LsCommand {
	return &LsCommand{deps: deps, Root: root, WorkDir: workDir, Recursive: recursive}
}

// Execute queries the index; the filesystem is not consulted
func (c *LsCommand) Execute(ctx context.Context) (*LsResult, error) {
	store, err := c.deps.OpenStore(c.Root)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	rel, err := application.RelFromRoot(c.Root, c.WorkDir)
	if err != nil {
		return nil, err
	}

	list := store.ListDir
	if c.Recursive {
		list = store.ListDirRecursive
	}
	entries, err := list(rel)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return &LsResult{Lines: []string{"No files in index"}}, nil
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })

	disp := application.NewDisplayContext(c.Root, c.WorkDir)
	result := &LsResult{Count: len(entries)}
	for _, entry := range entries {
		result.Lines = append(result.Lines, disp.FormatEntry(entry))
	}
	return result, nil
}

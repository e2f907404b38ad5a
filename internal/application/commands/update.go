package commands

import (
	"context"
	"fmt"
	"os"

	"cadex/internal/application"
	"cadex/internal/domain"
)

// UpdateResult contains the per-file lines and counters of an update run
type UpdateResult struct {
	Lines []string
	Stats domain.UpdateStats
}

// UpdateCommand reconciles the index with the filesystem
type UpdateCommand struct {
	deps    Deps
	Root    string
	WorkDir string
	Path    string
	Verbose bool
}

// NewUpdateCommand creates a new UpdateCommand
func NewUpdateCommand(deps Deps, root, workDir, path string, verbose bool) *UpdateCommand {
	return &UpdateCommand{deps: deps, Root: root, WorkDir: workDir, Path: path, Verbose: verbose}
}

// Execute applies every classified change to the index and persists it once
// at the end of the whole operation.
func (c *UpdateCommand) Execute(ctx context.Context) (*UpdateResult, error) {
	store, matcher, err := c.deps.openRepo(c.Root)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	target := c.Root
	if c.Path != "" {
		target = resolvePath(c.WorkDir, c.Path)
		if _, err := os.Stat(target); err != nil {
			return nil, fmt.Errorf("path does not exist: %s", target)
		}
	}

	rec := c.deps.reconciler(c.Root, store, matcher)
	cs, err := rec.Classify(target, true, c.Verbose)
	if err != nil {
		return nil, err
	}

	disp := application.NewDisplayContext(c.Root, c.WorkDir)
	result := &UpdateResult{}
	result.Stats.Skipped = cs.Skipped

	for _, p := range cs.Added {
		entry, err := c.deps.Inspector.NewEntry(repoPath(c.Root, p), p)
		if err != nil {
			return nil, err
		}
		if err := store.Upsert(entry); err != nil {
			return nil, err
		}
		result.Lines = append(result.Lines,
			fmt.Sprintf("%s %s", application.MarkerAdded, disp.Rel(p)))
		result.Stats.Added++
	}
	for _, p := range cs.Updated {
		entry, err := c.deps.Inspector.NewEntry(repoPath(c.Root, p), p)
		if err != nil {
			return nil, err
		}
		if err := store.Upsert(entry); err != nil {
			return nil, err
		}
		result.Lines = append(result.Lines,
			fmt.Sprintf("%s %s", application.MarkerUpdated, disp.Rel(p)))
		result.Stats.Updated++
	}
	for _, entry := range cs.Deleted {
		if err := store.Remove(entry.Path); err != nil {
			return nil, err
		}
		result.Lines = append(result.Lines,
			fmt.Sprintf("%s %s", application.MarkerDeleted, disp.Rel(entry.Path)))
		result.Stats.Removed++
	}
	if c.Verbose {
		for _, entry := range cs.Unchanged {
			result.Lines = append(result.Lines,
				fmt.Sprintf("%s %s", application.MarkerUnchanged, disp.FormatEntry(entry)))
		}
		for _, p := range cs.Ignored {
			result.Lines = append(result.Lines,
				fmt.Sprintf("%s %s", application.MarkerIgnored, disp.Rel(p)))
		}
	}

	if err := store.Save(c.Root); err != nil {
		return nil, err
	}

	if result.Stats.Total() > 0 {
		result.Lines = append(result.Lines,
			fmt.Sprintf("Updated %d file(s) in the index (%d added, %d updated, %d removed)",
				result.Stats.Total(), result.Stats.Added, result.Stats.Updated, result.Stats.Removed))
	} else {
		result.Lines = append(result.Lines, "Updated 0 file(s) in the index")
	}
	if result.Stats.Skipped > 0 {
		result.Lines = append(result.Lines,
			fmt.Sprintf("Skipped %d unchanged file(s)", result.Stats.Skipped))
	}
	return result, nil
}

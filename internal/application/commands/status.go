package commands

import (
	"context"
	"fmt"
	"os"

	"cadex/internal/application"
)

// StatusResult contains the classified changes as display lines
type StatusResult struct {
	Lines      []string
	HasChanges bool
}

// StatusCommand reports differences between the index and the filesystem
type StatusCommand struct {
	deps      Deps
	Root      string
	WorkDir   string
	Path      string
	Recursive bool
	Verbose   bool
}

// NewStatusCommand creates a new StatusCommand
func NewStatusCommand(deps Deps, root, workDir, path string, recursive, verbose bool) *StatusCommand {
	return &StatusCommand{
		deps:      deps,
		Root:      root,
		WorkDir:   workDir,
		Path:      path,
		Recursive: recursive,
		Verbose:   verbose,
	}
}

// Execute classifies every path in scope and renders it for display.
// Nothing is written to the index.
func (c *StatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	store, matcher, err := c.deps.openRepo(c.Root)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	target, recursive, err := c.scanTarget()
	if err != nil {
		return nil, err
	}

	rec := c.deps.reconciler(c.Root, store, matcher)
	cs, err := rec.Classify(target, recursive, c.Verbose)
	if err != nil {
		return nil, err
	}

	disp := application.NewDisplayContext(c.Root, c.WorkDir)
	result := &StatusResult{HasChanges: cs.HasChanges()}

	for _, p := range cs.Added {
		entry, err := c.deps.Inspector.NewEntry(repoPath(c.Root, p), disp.Rel(p))
		if err != nil {
			return nil, err
		}
		result.Lines = append(result.Lines,
			fmt.Sprintf("%s %s", application.MarkerAdded, application.FormatEntry(entry)))
	}
	for _, p := range cs.Updated {
		entry, err := c.deps.Inspector.NewEntry(repoPath(c.Root, p), disp.Rel(p))
		if err != nil {
			return nil, err
		}
		result.Lines = append(result.Lines,
			fmt.Sprintf("%s %s", application.MarkerUpdated, application.FormatEntry(entry)))
	}
	for _, entry := range cs.Deleted {
		result.Lines = append(result.Lines,
			fmt.Sprintf("%s %s", application.MarkerDeleted, disp.FormatEntry(entry)))
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

	if !result.HasChanges && len(result.Lines) == 0 {
		result.Lines = append(result.Lines, "No changes")
	}
	return result, nil
}

// scanTarget resolves what to scan. A path argument is scanned in place
// (recursively only for directories with -r); a bare -r scans from the
// working directory; no arguments scan the whole repository.
func (c *StatusCommand) scanTarget() (string, bool, error) {
	if c.Path != "" {
		target := resolvePath(c.WorkDir, c.Path)
		info, err := os.Stat(target)
		if err != nil {
			return "", false, fmt.Errorf("path does not exist: %s", target)
		}
		return target, info.IsDir() && c.Recursive, nil
	}
	if c.Recursive {
		return c.WorkDir, true, nil
	}
	return c.Root, true, nil
}

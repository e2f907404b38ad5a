package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cadex/internal/config"
)

// RestoreResult contains the outcome of a restore pass
type RestoreResult struct {
	Lines    []string
	Restored int
}

// RestoreCommand moves every pruned file back to its original location and
// re-adds it to the index.
type RestoreCommand struct {
	deps Deps
	Root string
}

// NewRestoreCommand creates a new RestoreCommand
func NewRestoreCommand(deps Deps, root string) *RestoreCommand {
	return &RestoreCommand{deps: deps, Root: root}
}

// Execute walks the pruneyard, restores each file, and removes the
// pruneyard root once it is empty.
func (c *RestoreCommand) Execute(ctx context.Context) (*RestoreResult, error) {
	yard := filepath.Join(c.Root, config.MetaDir, config.PruneyardDir)

	if _, err := os.Stat(yard); os.IsNotExist(err) {
		return &RestoreResult{Lines: []string{"No pruneyard directory exists"}}, nil
	}

	store, err := c.deps.OpenStore(c.Root)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	result := &RestoreResult{}
	err = filepath.WalkDir(yard, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(yard, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		dest := repoPath(c.Root, rel)

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(dest), err)
		}
		if err := os.Rename(p, dest); err != nil {
			return fmt.Errorf("failed to restore file %s: %w", p, err)
		}

		entry, err := c.deps.Inspector.NewEntry(dest, rel)
		if err != nil {
			return err
		}
		if err := store.Upsert(entry); err != nil {
			return err
		}

		result.Lines = append(result.Lines, fmt.Sprintf("Restored: %s", rel))
		result.Restored++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := os.RemoveAll(yard); err != nil {
		return nil, fmt.Errorf("failed to remove pruneyard directory: %w", err)
	}
	if err := store.Save(c.Root); err != nil {
		return nil, err
	}

	result.Lines = append(result.Lines,
		fmt.Sprintf("Restored %d file(s) from pruneyard", result.Restored))
	return result, nil
}

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cadex/internal/application"
	"cadex/internal/config"
)

// ConfirmFn asks the user a yes/no question. Returning an error is treated
// as declining.
type ConfirmFn func(question string) (bool, error)

// PurgeResult contains the outcome of a purge
type PurgeResult struct {
	Lines     []string
	Deleted   int
	Cancelled bool
}

// PurgeCommand permanently deletes the pruneyard
type PurgeCommand struct {
	deps    Deps
	Root    string
	Force   bool
	Confirm ConfirmFn
}

// NewPurgeCommand creates a new PurgeCommand
func NewPurgeCommand(deps Deps, root string, force bool, confirm ConfirmFn) *PurgeCommand {
	return &PurgeCommand{deps: deps, Root: root, Force: force, Confirm: confirm}
}

// Execute re-checks the pending-changes guard, counts the quarantined
// files, and deletes the pruneyard after confirmation.
func (c *PurgeCommand) Execute(ctx context.Context) (*PurgeResult, error) {
	store, matcher, err := c.deps.openRepo(c.Root)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	pending, err := c.deps.reconciler(c.Root, store, matcher).HasPendingChanges()
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, &application.PendingChangesError{Op: "purge"}
	}

	yard := filepath.Join(c.Root, config.MetaDir, config.PruneyardDir)
	if _, err := os.Stat(yard); os.IsNotExist(err) {
		return &PurgeResult{Lines: []string{"No pruneyard directory exists"}}, nil
	}

	count, err := c.deps.Janitor.CountFiles(yard)
	if err != nil {
		return nil, err
	}

	if !c.Force {
		confirmed, err := c.Confirm(
			fmt.Sprintf("This will permanently delete %d pruned file(s). Continue", count))
		if err != nil || !confirmed {
			return &PurgeResult{Cancelled: true, Lines: []string{"Purge cancelled"}}, nil
		}
	}

	if err := os.RemoveAll(yard); err != nil {
		return nil, fmt.Errorf("failed to remove pruneyard directory: %w", err)
	}

	return &PurgeResult{
		Deleted: count,
		Lines:   []string{fmt.Sprintf("Permanently deleted %d pruned file(s)", count)},
	}, nil
}

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cadex/internal/config"
)

// DeinitResult contains the outcome of removing the index
type DeinitResult struct {
	Message   string
	Cancelled bool
}

// DeinitCommand removes the metadata directory and everything in it
type DeinitCommand struct {
	Root    string
	Force   bool
	Confirm ConfirmFn
}

// NewDeinitCommand creates a new DeinitCommand
func NewDeinitCommand(root string, force bool, confirm ConfirmFn) *DeinitCommand {
	return &DeinitCommand{Root: root, Force: force, Confirm: confirm}
}

// Execute deletes the metadata directory after confirmation
func (c *DeinitCommand) Execute(ctx context.Context) (*DeinitResult, error) {
	metaDir := filepath.Join(c.Root, config.MetaDir)

	if !c.Force {
		confirmed, err := c.Confirm(
			fmt.Sprintf("This will permanently delete the index at %s. Continue", metaDir))
		if err != nil || !confirmed {
			return &DeinitResult{Cancelled: true, Message: "Deinit cancelled"}, nil
		}
	}

	if err := os.RemoveAll(metaDir); err != nil {
		return nil, fmt.Errorf("failed to remove metadata directory: %w", err)
	}

	return &DeinitResult{
		Message: fmt.Sprintf("Deinitialized cadex index at %s", metaDir),
	}, nil
}

package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cadex/internal/config"
	"cadex/internal/ignore"
)

// InitResult contains the result of initializing a repository
type InitResult struct {
	Message string
}

// InitCommand creates an empty index in the working directory
type InitCommand struct {
	deps    Deps
	WorkDir string
}

// NewInitCommand creates a new InitCommand
func NewInitCommand(deps Deps, workDir string) *InitCommand {
	return &InitCommand{deps: deps, WorkDir: workDir}
}

// Execute initializes the metadata directory, index, ignore file, and config
func (c *InitCommand) Execute(ctx context.Context) (*InitResult, error) {
	metaDir := filepath.Join(c.WorkDir, config.MetaDir)

	if _, err := os.Stat(metaDir); err == nil {
		return nil, fmt.Errorf("index already exists at %s", metaDir)
	}
	if err := os.MkdirAll(metaDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create metadata directory: %w", err)
	}

	store, err := c.deps.OpenMemory()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	if err := store.Save(c.WorkDir); err != nil {
		return nil, err
	}
	if err := ignore.Init(c.WorkDir); err != nil {
		return nil, err
	}
	if err := config.New().Save(c.WorkDir); err != nil {
		return nil, err
	}

	return &InitResult{
		Message: fmt.Sprintf("Initialized empty cadex index in %s", metaDir),
	}, nil
}

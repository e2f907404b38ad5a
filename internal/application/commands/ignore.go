package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"cadex/internal/application"
	"cadex/internal/config"
	"cadex/internal/ignore"
)

// IgnoreResult contains the result of adding an ignore pattern
type IgnoreResult struct {
	Pattern string
	Message string
}

// IgnoreCommand appends a pattern to the repository's ignore file. Without
// an explicit pattern, the working directory itself is added.
type IgnoreCommand struct {
	Root    string
	WorkDir string
	Pattern string
}

// NewIgnoreCommand creates a new IgnoreCommand
func NewIgnoreCommand(root, workDir, pattern string) *IgnoreCommand {
	return &IgnoreCommand{Root: root, WorkDir: workDir, Pattern: pattern}
}

// Execute resolves the pattern relative to the repository root and appends it
func (c *IgnoreCommand) Execute(ctx context.Context) (*IgnoreResult, error) {
	pattern := c.Pattern

	switch {
	case pattern == "":
		rel, err := application.RelFromRoot(c.Root, c.WorkDir)
		if err != nil {
			return nil, err
		}
		pattern = rel
	case !filepath.IsAbs(pattern):
		// Path-like patterns are recorded relative to the repository root,
		// so the same ignore file works from any working directory.
		rel, err := application.RelFromRoot(c.Root, filepath.Join(c.WorkDir, pattern))
		if err != nil {
			return nil, err
		}
		pattern = rel
	}

	if err := ignore.Add(c.Root, pattern); err != nil {
		return nil, err
	}

	return &IgnoreResult{
		Pattern: pattern,
		Message: fmt.Sprintf("Added pattern to %s/%s: %s", config.MetaDir, config.IgnoreFile, pattern),
	}, nil
}

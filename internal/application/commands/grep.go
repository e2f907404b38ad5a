package commands

import (
	"context"
	"fmt"

	"cadex/internal/application"
)

// GrepResult contains the entries matching a hash
type GrepResult struct {
	Lines []string
	Count int
}

// GrepCommand finds indexed files by content hash
type GrepCommand struct {
	deps Deps
	Root string
	Hash string
}

// NewGrepCommand creates a new GrepCommand
func NewGrepCommand(deps Deps, root, hash string) *GrepCommand {
	return &GrepCommand{deps: deps, Root: root, Hash: hash}
}

// Validate checks if the grep operation is valid
func (c *GrepCommand) Validate() error {
	if c.Hash == "" {
		return &application.ValidationError{
			Field:   "hash",
			Message: "hash is required",
		}
	}
	return nil
}

// Execute looks up all entries sharing the hash
func (c *GrepCommand) Execute(ctx context.Context) (*GrepResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	store, err := c.deps.OpenStore(c.Root)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	matches, err := store.FindByHash(c.Hash)
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return &GrepResult{Lines: []string{fmt.Sprintf("No files found with hash: %s", c.Hash)}}, nil
	}

	result := &GrepResult{Count: len(matches)}
	result.Lines = append(result.Lines,
		fmt.Sprintf("Found %d file(s) with hash %s:", len(matches), c.Hash))
	for _, entry := range matches {
		result.Lines = append(result.Lines, application.FormatEntry(entry))
	}
	return result, nil
}

package commands

import (
	"context"
	"fmt"

	"cadex/internal/domain"
)

// StatsResult contains the rendered index statistics
type StatsResult struct {
	Lines      []string
	TotalFiles int
	TotalBytes uint64
}

// StatsCommand summarizes the index
type StatsCommand struct {
	deps Deps
	Root string
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(deps Deps, root string) *StatsCommand {
	return &StatsCommand{deps: deps, Root: root}
}

// Execute computes totals, dedup counts, and storage efficiency
func (c *StatsCommand) Execute(ctx context.Context) (*StatsResult, error) {
	store, err := c.deps.OpenStore(c.Root)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	entries, err := store.ListDirRecursive("")
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return &StatsResult{Lines: []string{"Index is empty"}}, nil
	}

	var totalBytes uint64
	byHash := make(map[string][]domain.FileEntry)
	for _, entry := range entries {
		totalBytes += entry.NumBytes
		byHash[entry.SHA256] = append(byHash[entry.SHA256], entry)
	}

	var uniqueBytes, wastedBytes uint64
	duplicateFiles := 0
	duplicateGroups := 0
	for _, files := range byHash {
		uniqueBytes += files[0].NumBytes
		if len(files) > 1 {
			duplicateFiles += len(files)
			duplicateGroups++
			wastedBytes += files[0].NumBytes * uint64(len(files)-1)
		}
	}

	efficiency := 100.0
	if totalBytes > 0 {
		efficiency = float64(uniqueBytes) / float64(totalBytes) * 100.0
	}

	result := &StatsResult{TotalFiles: len(entries), TotalBytes: totalBytes}
	result.Lines = append(result.Lines, "Index Statistics:")
	result.Lines = append(result.Lines, fmt.Sprintf("  Total files: %d", len(entries)))
	result.Lines = append(result.Lines, fmt.Sprintf("  Total size: %d bytes (%.2f MB)",
		totalBytes, float64(totalBytes)/1048576.0))
	result.Lines = append(result.Lines, fmt.Sprintf("  Unique hashes: %d", len(byHash)))
	result.Lines = append(result.Lines, fmt.Sprintf("  Duplicate files: %d", duplicateFiles))
	if duplicateFiles > 0 {
		result.Lines = append(result.Lines, fmt.Sprintf("  Duplicate groups: %d", duplicateGroups))
		result.Lines = append(result.Lines, fmt.Sprintf("  Wasted space: %d bytes (%.2f MB)",
			wastedBytes, float64(wastedBytes)/1048576.0))
	}
	result.Lines = append(result.Lines, fmt.Sprintf("  Storage efficiency: %.2f%%", efficiency))
	return result, nil
}

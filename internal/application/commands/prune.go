package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cadex/internal/application"
	"cadex/internal/config"
	"cadex/internal/ignore"
	"cadex/internal/ports"
)

// Prune reasons, in precedence order: a file that is both a duplicate and
// ignored is labeled duplicate.
const (
	reasonDuplicate = "duplicate"
	reasonIgnored   = "ignored"
)

// PruneResult contains the per-file lines and counters of a prune pass
type PruneResult struct {
	Lines      []string
	Pruned     int
	Duplicates int
	Ignored    int
}

// pruneItem is one prune-eligible file. Files matched purely by ignore
// patterns may have no index entry to remove.
type pruneItem struct {
	path    string
	reason  string
	inIndex bool
}

// PruneCommand moves redundant local files into the pruneyard: files whose
// content already exists in a source repository, and files matched by
// source (or, with the local-ignored flag, local) ignore patterns.
type PruneCommand struct {
	deps    Deps
	Root    string
	WorkDir string
	// Source is the source repository path; optional when LocalIgnored is
	// set, in which case only local ignore patterns apply.
	Source string
	// NoIgnore disables the source repository's ignore patterns.
	NoIgnore bool
	// LocalIgnored additionally prunes files matching the local
	// repository's own ignore patterns.
	LocalIgnored bool
}

// NewPruneCommand creates a new PruneCommand
func NewPruneCommand(deps Deps, root, workDir, source string, noIgnore, localIgnored bool) *PruneCommand {
	return &PruneCommand{
		deps:         deps,
		Root:         root,
		WorkDir:      workDir,
		Source:       source,
		NoIgnore:     noIgnore,
		LocalIgnored: localIgnored,
	}
}

// Validate checks if the prune operation is valid
func (c *PruneCommand) Validate() error {
	if c.Source == "" && !c.LocalIgnored {
		return &application.ValidationError{
			Field:   "source",
			Message: "source repository is required unless --ignored is set",
		}
	}
	return nil
}

// Execute runs one prune pass. Both repositories must be fully updated
// before any file is moved.
func (c *PruneCommand) Execute(ctx context.Context) (*PruneResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

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
		return nil, &application.PendingChangesError{Op: "prune"}
	}

	var sourceStore ports.IndexStore
	var sourceIgn *ignore.Matcher
	if c.Source != "" {
		sourceRoot, err := c.checkSource()
		if err != nil {
			return nil, err
		}

		srcStore, srcMatcher, err := c.deps.openRepo(sourceRoot)
		if err != nil {
			return nil, err
		}
		defer srcStore.Close()

		srcPending, err := c.deps.reconciler(sourceRoot, srcStore, srcMatcher).HasPendingChanges()
		if err != nil {
			return nil, err
		}
		if srcPending {
			return nil, &application.PendingChangesError{Op: "prune", Source: sourceRoot}
		}

		sourceStore = srcStore
		if !c.NoIgnore {
			patterns, err := ignore.Load(sourceRoot)
			if err != nil {
				return nil, err
			}
			if len(patterns) > 0 {
				sourceIgn = ignore.NewMatcher(patterns)
			}
		}
	}

	var localIgn *ignore.Matcher
	if c.LocalIgnored {
		patterns, err := ignore.Load(c.Root)
		if err != nil {
			return nil, err
		}
		if len(patterns) > 0 {
			localIgn = ignore.NewMatcher(patterns)
		}
	}

	items, err := c.collectEligible(store, sourceStore, sourceIgn, localIgn)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &PruneResult{Lines: []string{"No files to prune"}}, nil
	}

	return c.moveToPruneyard(store, items)
}

// checkSource resolves and validates the source repository path.
func (c *PruneCommand) checkSource() (string, error) {
	sourceRoot := resolvePath(c.WorkDir, c.Source)

	if _, err := os.Stat(sourceRoot); err != nil {
		return "", fmt.Errorf("source path does not exist: %s", sourceRoot)
	}
	if info, err := os.Stat(filepath.Join(sourceRoot, config.MetaDir)); err != nil || !info.IsDir() {
		return "", fmt.Errorf("source is not a cadex repository: %s", sourceRoot)
	}

	canonicalSource, err := filepath.EvalSymlinks(sourceRoot)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize source path: %w", err)
	}
	canonicalLocal, err := filepath.EvalSymlinks(c.Root)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize local path: %w", err)
	}
	if canonicalSource == canonicalLocal {
		return "", application.ErrSameRepository
	}
	return sourceRoot, nil
}

// collectEligible marks every indexed file that is a duplicate of source
// content or matched by the active ignore patterns, then sweeps the
// filesystem for ignored files that never made it into the index.
func (c *PruneCommand) collectEligible(store, sourceStore ports.IndexStore, sourceIgn, localIgn *ignore.Matcher) ([]pruneItem, error) {
	var items []pruneItem
	seen := make(map[string]bool)

	entries, err := store.ListDirRecursive("")
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		duplicate := false
		if sourceStore != nil {
			matches, err := sourceStore.FindByHash(entry.SHA256)
			if err != nil {
				return nil, err
			}
			duplicate = len(matches) > 0
		}
		ignored := (sourceIgn != nil && sourceIgn.Match(entry.Path)) ||
			(localIgn != nil && localIgn.Match(entry.Path))

		if !duplicate && !ignored {
			continue
		}
		reason := reasonIgnored
		if duplicate {
			reason = reasonDuplicate
		}
		items = append(items, pruneItem{path: entry.Path, reason: reason, inIndex: true})
		seen[entry.Path] = true
	}

	if sourceIgn == nil && localIgn == nil {
		return items, nil
	}

	// Files matching ignore patterns were never indexed, so the walk has
	// to find them directly. Only the metadata directory is excluded here.
	scan, err := c.deps.NewScanner(c.Root, ignore.NewMatcher(nil)).Scan(c.Root, true, false)
	if err != nil {
		return nil, err
	}
	for p := range scan.Tracked {
		if seen[p] {
			continue
		}
		entry, err := store.Get(p)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			continue
		}
		if (sourceIgn != nil && sourceIgn.Match(p)) || (localIgn != nil && localIgn.Match(p)) {
			items = append(items, pruneItem{path: p, reason: reasonIgnored})
		}
	}
	return items, nil
}

// moveToPruneyard moves each eligible file into the quarantine area at the
// same relative path, drops its index entry, and cleans up emptied
// directories. The index is persisted once at the end.
func (c *PruneCommand) moveToPruneyard(store ports.IndexStore, items []pruneItem) (*PruneResult, error) {
	yard := filepath.Join(c.Root, config.MetaDir, config.PruneyardDir)
	if err := os.MkdirAll(yard, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create pruneyard directory: %w", err)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].path < items[j].path })

	result := &PruneResult{}
	for _, item := range items {
		src := repoPath(c.Root, item.path)
		dst := filepath.Join(yard, filepath.FromSlash(item.path))

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", filepath.Dir(dst), err)
		}
		if err := os.Rename(src, dst); err != nil {
			return nil, fmt.Errorf("failed to move file %s: %w", src, err)
		}
		if err := c.deps.Janitor.RemoveEmptyParents(src, c.Root); err != nil {
			return nil, err
		}
		if item.inIndex {
			if err := store.Remove(item.path); err != nil {
				return nil, err
			}
		}

		result.Lines = append(result.Lines, fmt.Sprintf("Pruned (%s): %s", item.reason, item.path))
		result.Pruned++
		if item.reason == reasonDuplicate {
			result.Duplicates++
		} else {
			result.Ignored++
		}
	}

	if err := store.Save(c.Root); err != nil {
		return nil, err
	}

	emptied, err := c.deps.Janitor.RemoveAllEmpty(c.Root)
	if err != nil {
		return nil, err
	}

	result.Lines = append(result.Lines,
		fmt.Sprintf("Pruned %d file(s) to %s/%s/ (%d duplicates, %d ignored)",
			result.Pruned, config.MetaDir, config.PruneyardDir, result.Duplicates, result.Ignored))
	if emptied > 0 {
		suffix := "ies"
		if emptied == 1 {
			suffix = "y"
		}
		result.Lines = append(result.Lines, fmt.Sprintf("Removed %d empty director%s", emptied, suffix))
	}
	return result, nil
}

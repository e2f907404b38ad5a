package application

import (
	"os"
	"sort"

	"cadex/internal/domain"
	"cadex/internal/ignore"
	"cadex/internal/ports"
)

// ChangeSet classifies every path in a reconciliation scope.
type ChangeSet struct {
	Added   []string
	Updated []string
	// Deleted and Unchanged carry the stored entries; the files are gone
	// (Deleted) or identical (Unchanged), so the index is the only source.
	Deleted   []domain.FileEntry
	Unchanged []domain.FileEntry
	Ignored   []string
	// Skipped counts unchanged files even when their entries were not
	// collected.
	Skipped int
}

// HasChanges reports whether any added, updated, or deleted path exists.
func (c *ChangeSet) HasChanges() bool {
	return len(c.Added)+len(c.Updated)+len(c.Deleted) > 0
}

// Reconciler compares a live filesystem scan against the index.
type Reconciler struct {
	Root      string
	Store     ports.IndexStore
	Matcher   *ignore.Matcher
	Inspector ports.FileInspector
	Scanner   ports.TreeScanner
}

// Classify walks target and classifies every path appearing in either the
// scan or the index's matching directory scope. Unchanged and ignored
// entries are collected only when includeUnchanged is set; the change lists
// are always complete. Comparison is always by repository-relative path.
func (r *Reconciler) Classify(target string, recursive, includeUnchanged bool) (*ChangeSet, error) {
	cs := &ChangeSet{}

	info, err := os.Stat(target)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		// A single file is evaluated alone, never recursively.
		rel, err := RelFromRoot(r.Root, target)
		if err != nil {
			return nil, err
		}
		if r.Matcher.Match(rel) {
			if includeUnchanged {
				cs.Ignored = append(cs.Ignored, rel)
			}
			return cs, nil
		}
		entry, err := r.Store.Get(rel)
		if err != nil {
			return nil, err
		}
		switch {
		case entry == nil:
			cs.Added = append(cs.Added, rel)
		default:
			changed, err := r.Inspector.HasChanged(*entry, target)
			if err != nil {
				return nil, err
			}
			if changed {
				cs.Updated = append(cs.Updated, rel)
			} else {
				cs.Skipped++
				if includeUnchanged {
					cs.Unchanged = append(cs.Unchanged, *entry)
				}
			}
		}
		return cs, nil
	}

	relTarget, err := RelFromRoot(r.Root, target)
	if err != nil {
		return nil, err
	}

	scan, err := r.Scanner.Scan(target, recursive, includeUnchanged)
	if err != nil {
		return nil, err
	}

	var indexed []domain.FileEntry
	if recursive {
		indexed, err = r.Store.ListDirRecursive(relTarget)
	} else {
		indexed, err = r.Store.ListDir(relTarget)
	}
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(scan.Tracked))
	for p := range scan.Tracked {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		full := joinRoot(r.Root, p)
		entry, err := r.Store.Get(p)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			cs.Added = append(cs.Added, p)
			continue
		}
		changed, err := r.Inspector.HasChanged(*entry, full)
		if err != nil {
			return nil, err
		}
		if changed {
			cs.Updated = append(cs.Updated, p)
		} else {
			cs.Skipped++
			if includeUnchanged {
				cs.Unchanged = append(cs.Unchanged, *entry)
			}
		}
	}

	// Ignore patterns gate what enters the index, not what leaves it: an
	// entry the scan no longer sees is deleted even when its path has since
	// become ignored, so the index cannot accumulate unremovable entries.
	for _, entry := range indexed {
		if !scan.Tracked[entry.Path] {
			cs.Deleted = append(cs.Deleted, entry)
		}
	}

	cs.Ignored = scan.Ignored
	sort.Strings(cs.Ignored)
	return cs, nil
}

// HasPendingChanges reports whether the repository's filesystem disagrees
// with its index anywhere.
func (r *Reconciler) HasPendingChanges() (bool, error) {
	cs, err := r.Classify(r.Root, true, false)
	if err != nil {
		return false, err
	}
	return cs.HasChanges(), nil
}

package commands

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"cadex/internal/application"
	"cadex/internal/config"
)

// newSourceRepo initializes a source repository holding the given files,
// fully indexed.
func newSourceRepo(t *testing.T, files map[string]string) (string, Deps) {
	t.Helper()
	root, deps := newTestRepo(t)
	for name, content := range files {
		writeFile(t, root, name, content)
	}
	runUpdate(t, deps, root)
	return root, deps
}

func runPrune(t *testing.T, deps Deps, root, source string, noIgnore, localIgnored bool) *PruneResult {
	t.Helper()
	result, err := NewPruneCommand(deps, root, root, source, noIgnore, localIgnored).Execute(context.Background())
	if err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	return result
}

func TestPruneCommand_MovesDuplicates(t *testing.T) {
	source, _ := newSourceRepo(t, map[string]string{"archive/backup.txt": "shared content"})
	root, deps := newTestRepo(t)
	writeFile(t, root, "dup.txt", "shared content")
	writeFile(t, root, "keep.txt", "unique content")
	runUpdate(t, deps, root)

	result := runPrune(t, deps, root, source, false, false)

	if result.Pruned != 1 || result.Duplicates != 1 || result.Ignored != 0 {
		t.Fatalf("expected 1 duplicate pruned, got %+v", result)
	}
	if !containsLine(result.Lines, "Pruned (duplicate): dup.txt") {
		t.Errorf("expected per-file line, got %v", result.Lines)
	}
	if !containsLine(result.Lines, "Pruned 1 file(s) to .cadex/pruneyard/ (1 duplicates, 0 ignored)") {
		t.Errorf("expected summary line, got %v", result.Lines)
	}

	if fileExists(filepath.Join(root, "dup.txt")) {
		t.Error("expected dup.txt moved out of the tree")
	}
	if !fileExists(filepath.Join(root, config.MetaDir, config.PruneyardDir, "dup.txt")) {
		t.Error("expected dup.txt in the pruneyard")
	}
	if !fileExists(filepath.Join(root, "keep.txt")) {
		t.Error("expected keep.txt untouched")
	}

	// The moved file is gone from the index, so status stays clean.
	status := runStatus(t, deps, root, root, "", false, false)
	if status.HasChanges {
		t.Errorf("expected clean status after prune, got %v", status.Lines)
	}
}

func TestPruneCommand_NothingToPrune(t *testing.T) {
	source, _ := newSourceRepo(t, map[string]string{"other.txt": "other"})
	root, deps := newTestRepo(t)
	writeFile(t, root, "mine.txt", "mine")
	runUpdate(t, deps, root)

	result := runPrune(t, deps, root, source, false, false)

	if len(result.Lines) != 1 || result.Lines[0] != "No files to prune" {
		t.Errorf("unexpected output: %v", result.Lines)
	}
}

func TestPruneCommand_SourceIgnorePatterns(t *testing.T) {
	source, _ := newSourceRepo(t, nil)
	if _, err := NewIgnoreCommand(source, source, "*.tmp").Execute(context.Background()); err != nil {
		t.Fatalf("failed to add source pattern: %v", err)
	}
	root, deps := newTestRepo(t)
	writeFile(t, root, "scratch.tmp", "t")
	writeFile(t, root, "keep.txt", "k")
	runUpdate(t, deps, root)

	result := runPrune(t, deps, root, source, false, false)

	if result.Pruned != 1 || result.Ignored != 1 {
		t.Fatalf("expected 1 ignored file pruned, got %+v", result)
	}
	if !containsLine(result.Lines, "Pruned (ignored): scratch.tmp") {
		t.Errorf("expected ignored reason, got %v", result.Lines)
	}

	// With --no-ignore the same file survives.
	root2, deps2 := newTestRepo(t)
	writeFile(t, root2, "scratch.tmp", "t")
	runUpdate(t, deps2, root2)

	result = runPrune(t, deps2, root2, source, true, false)
	if len(result.Lines) != 1 || result.Lines[0] != "No files to prune" {
		t.Errorf("expected --no-ignore to skip pattern pruning, got %v", result.Lines)
	}
}

func TestPruneCommand_DuplicateReasonWins(t *testing.T) {
	// A file that is both duplicated in the source and matched by a source
	// ignore pattern is reported as a duplicate.
	source, _ := newSourceRepo(t, map[string]string{"kept.txt": "both"})
	if _, err := NewIgnoreCommand(source, source, "*.tmp").Execute(context.Background()); err != nil {
		t.Fatalf("failed to add source pattern: %v", err)
	}
	root, deps := newTestRepo(t)
	writeFile(t, root, "local.tmp", "both")
	runUpdate(t, deps, root)

	result := runPrune(t, deps, root, source, false, false)

	if result.Duplicates != 1 || result.Ignored != 0 {
		t.Errorf("expected duplicate to take precedence, got %+v", result)
	}
}

func TestPruneCommand_LocalIgnoredOnly(t *testing.T) {
	root, deps := newTestRepo(t)
	writeFile(t, root, "noise.log", "n")
	writeFile(t, root, "keep.txt", "k")
	if _, err := NewIgnoreCommand(root, root, "*.log").Execute(context.Background()); err != nil {
		t.Fatalf("failed to add pattern: %v", err)
	}
	runUpdate(t, deps, root)

	// No source at all: only local ignore patterns apply. noise.log was
	// never indexed, the filesystem sweep still finds it.
	result := runPrune(t, deps, root, "", false, true)

	if result.Pruned != 1 || result.Ignored != 1 {
		t.Fatalf("expected 1 ignored file pruned, got %+v", result)
	}
	if fileExists(filepath.Join(root, "noise.log")) {
		t.Error("expected noise.log moved to the pruneyard")
	}
	if !fileExists(filepath.Join(root, "keep.txt")) {
		t.Error("expected keep.txt untouched")
	}
}

func TestPruneCommand_RemovesEmptiedDirectories(t *testing.T) {
	source, _ := newSourceRepo(t, map[string]string{"backup.txt": "shared"})
	root, deps := newTestRepo(t)
	writeFile(t, root, "a/b/dup.txt", "shared")
	runUpdate(t, deps, root)

	runPrune(t, deps, root, source, false, false)

	if fileExists(filepath.Join(root, "a")) {
		t.Error("expected emptied directories removed")
	}
	if !fileExists(filepath.Join(root, config.MetaDir, config.PruneyardDir, "a", "b", "dup.txt")) {
		t.Error("expected relative path preserved in the pruneyard")
	}
}

func TestPruneCommand_RequiresSource(t *testing.T) {
	root, deps := newTestRepo(t)

	_, err := NewPruneCommand(deps, root, root, "", false, false).Execute(context.Background())
	var verr *application.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPruneCommand_PendingLocalChanges(t *testing.T) {
	source, _ := newSourceRepo(t, nil)
	root, deps := newTestRepo(t)
	writeFile(t, root, "unindexed.txt", "u")

	_, err := NewPruneCommand(deps, root, root, source, false, false).Execute(context.Background())
	if !errors.Is(err, application.ErrPendingChanges) {
		t.Fatalf("expected pending-changes error, got %v", err)
	}
	if !strings.Contains(err.Error(), "pending changes in the local index") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestPruneCommand_PendingSourceChanges(t *testing.T) {
	source, _ := newSourceRepo(t, nil)
	writeFile(t, source, "unindexed.txt", "u")
	root, deps := newTestRepo(t)

	_, err := NewPruneCommand(deps, root, root, source, false, false).Execute(context.Background())
	if !errors.Is(err, application.ErrPendingChanges) {
		t.Fatalf("expected pending-changes error, got %v", err)
	}
	if !strings.Contains(err.Error(), "pending changes in the source index") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestPruneCommand_SameRepository(t *testing.T) {
	root, deps := newTestRepo(t)

	_, err := NewPruneCommand(deps, root, root, root, false, false).Execute(context.Background())
	if !errors.Is(err, application.ErrSameRepository) {
		t.Fatalf("expected same-repository error, got %v", err)
	}
}

func TestPruneCommand_SourceNotARepository(t *testing.T) {
	root, deps := newTestRepo(t)
	notARepo := t.TempDir()

	_, err := NewPruneCommand(deps, root, root, notARepo, false, false).Execute(context.Background())
	if err == nil || !strings.Contains(err.Error(), "source is not a cadex repository") {
		t.Fatalf("expected source validation error, got %v", err)
	}

	_, err = NewPruneCommand(deps, root, root, filepath.Join(notARepo, "absent"), false, false).Execute(context.Background())
	if err == nil || !strings.Contains(err.Error(), "source path does not exist") {
		t.Fatalf("expected missing-source error, got %v", err)
	}
}

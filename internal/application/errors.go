package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotRepository  = errors.New("not in a cadex repository (or any parent directory)")
	ErrPendingChanges = errors.New("pending changes")
	ErrSameRepository = errors.New("cannot prune using the same repository as source and local")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// OutsideRepositoryError reports a path that does not resolve under the
// repository root.
type OutsideRepositoryError struct {
	Path string
}

func (e *OutsideRepositoryError) Error() string {
	return fmt.Sprintf("path is outside the repository: %s", e.Path)
}

// PendingChangesError refuses a prune or purge while an index disagrees
// with its filesystem.
type PendingChangesError struct {
	Op string
	// Source is the source repository path, empty for the local repository.
	Source string
}

func (e *PendingChangesError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("cannot %s: there are pending changes in the source index at %s. Run 'cadex status' in the source directory to see changes.", e.Op, e.Source)
	}
	return fmt.Sprintf("cannot %s: there are pending changes in the local index. Run 'cadex status' to see changes.", e.Op)
}

func (e *PendingChangesError) Is(target error) bool {
	return target == ErrPendingChanges
}

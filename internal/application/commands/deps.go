package commands

import (
	"path/filepath"

	"cadex/internal/application"
	"cadex/internal/ignore"
	"cadex/internal/ports"
)

// Deps carries the adapter constructors every command runs against. The cmd
// layer wires the real filesystem and sqlite adapters; tests may substitute.
type Deps struct {
	OpenStore  ports.StoreOpener
	OpenMemory func() (ports.IndexStore, error)
	NewScanner ports.ScannerFactory
	Inspector  ports.FileInspector
	Janitor    ports.Janitor
}

// openRepo loads the index store and ignore matcher of the repository at
// root. The caller owns closing the store.
func (d Deps) openRepo(root string) (ports.IndexStore, *ignore.Matcher, error) {
	patterns, err := ignore.Load(root)
	if err != nil {
		return nil, nil, err
	}
	store, err := d.OpenStore(root)
	if err != nil {
		return nil, nil, err
	}
	return store, ignore.NewMatcher(patterns), nil
}

// reconciler builds a Reconciler over an already-open repository.
func (d Deps) reconciler(root string, store ports.IndexStore, matcher *ignore.Matcher) *application.Reconciler {
	return &application.Reconciler{
		Root:      root,
		Store:     store,
		Matcher:   matcher,
		Inspector: d.Inspector,
		Scanner:   d.NewScanner(root, matcher),
	}
}

// resolvePath expands a user-supplied path argument against workDir.
func resolvePath(workDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(workDir, p)
}

// repoPath resolves a repository-relative path to an absolute one.
func repoPath(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

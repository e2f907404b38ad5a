package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"cadex/internal/domain"
	"cadex/internal/ignore"
	"cadex/internal/ports"
)

// Scanner walks repository subtrees, filtering through an ignore matcher.
type Scanner struct {
	root    string
	matcher *ignore.Matcher
}

var _ ports.TreeScanner = (*Scanner)(nil)

// NewScanner returns a scanner bound to the repository at root.
func NewScanner(root string, matcher *ignore.Matcher) *Scanner {
	return &Scanner{root: root, matcher: matcher}
}

// Scan walks target, collecting regular files that pass the ignore filter.
// Entries that cannot be read are skipped and the walk continues; the
// warning surfaces only when debug logging is enabled (verbose mode).
func (s *Scanner) Scan(target string, recursive, collectIgnored bool) (*domain.ScanResult, error) {
	result := domain.NewScanResult()

	err := filepath.WalkDir(target, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logrus.WithError(err).WithField("path", p).Warn("skipping unreadable entry")
			return nil
		}

		rel, relErr := filepath.Rel(s.root, p)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			rel = ""
		}

		// Directories carry a trailing slash into the matcher so "dir/"
		// patterns prune the whole subtree.
		matchPath := rel
		if d.IsDir() {
			matchPath += "/"
		}
		if rel != "" && s.matcher.Match(matchPath) {
			if collectIgnored {
				result.Ignored = append(result.Ignored, rel)
			}
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if !recursive && p != target {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		result.Tracked[rel] = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

package ignore

import (
	"path"
	"strings"

	"github.com/gobwas/glob"

	"cadex/internal/config"
)

// pattern is one compiled ignore rule. A glob that fails to compile leaves
// the corresponding field nil, which makes that rule never match.
type pattern struct {
	raw  string
	full glob.Glob // the pattern as written, matched against full path and basename
	dir  bool      // pattern ended with "/"
	sub  glob.Glob // "<dir>/**", matched against the full path
	lit  string    // "<dir>/" for the literal prefix check
	segs []glob.Glob
}

// Matcher evaluates repository-relative paths against an ordered pattern
// list. The metadata directory is always ignored, independent of patterns.
type Matcher struct {
	patterns []pattern
}

// NewMatcher compiles the given glob patterns. Malformed globs are kept but
// never match.
func NewMatcher(raw []string) *Matcher {
	m := &Matcher{}
	for _, r := range raw {
		p := pattern{raw: r}
		if g, err := glob.Compile(r, '/'); err == nil {
			p.full = g
		}
		if strings.HasSuffix(r, "/") {
			p.dir = true
			d := strings.TrimSuffix(r, "/")
			p.lit = d + "/"
			if g, err := glob.Compile(d+"/**", '/'); err == nil {
				p.sub = g
			}
			p.segs = compileSegments(d)
		}
		m.patterns = append(m.patterns, p)
	}
	return m
}

func compileSegments(d string) []glob.Glob {
	parts := strings.Split(d, "/")
	segs := make([]glob.Glob, 0, len(parts))
	for _, part := range parts {
		g, err := glob.Compile(part, '/')
		if err != nil {
			return nil
		}
		segs = append(segs, g)
	}
	return segs
}

// Match reports whether the given repository-relative path is ignored.
// Callers pass directories with a trailing slash so directory patterns can
// match the directory itself, not just the files inside it.
func (m *Matcher) Match(p string) bool {
	if inMetaDir(p) {
		return true
	}

	base := path.Base(p)
	for _, pat := range m.patterns {
		if pat.full != nil && (pat.full.Match(p) || pat.full.Match(base)) {
			return true
		}
		if !pat.dir {
			continue
		}
		if pat.sub != nil && pat.sub.Match(p) {
			return true
		}
		if strings.HasPrefix(p, pat.lit) {
			return true
		}
		if matchesAncestor(p, pat.segs) {
			return true
		}
	}
	return false
}

// matchesAncestor walks upward through every parent directory of p and
// reports whether any of them ends with segments matching the directory
// pattern. This is what makes ".venv/" apply no matter how deep a ".venv"
// directory sits in the tree.
func matchesAncestor(p string, segs []glob.Glob) bool {
	if len(segs) == 0 {
		return false
	}
	parts := strings.Split(p, "/")
	if len(parts) < 2 {
		return false
	}
	dirs := parts[:len(parts)-1]

	for end := len(dirs); end >= len(segs); end-- {
		matched := true
		for i, g := range segs {
			if !g.Match(dirs[end-len(segs)+i]) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// inMetaDir reports whether p is the metadata directory or lies inside one.
func inMetaDir(p string) bool {
	meta := config.MetaDir
	return p == meta ||
		strings.HasPrefix(p, meta+"/") ||
		strings.HasSuffix(p, "/"+meta) ||
		strings.Contains(p, "/"+meta+"/")
}

package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cadex/internal/config"
)

// defaultContent is the pattern file seeded by init. The patterns cover
// common intermediate and derived files; users can edit or remove any of them.
const defaultContent = `# Default ignore patterns for cadex
# These patterns ignore common intermediate/derived files
# You can modify or remove any of these patterns as needed

# Package manager dependencies (downloaded/managed automatically)
node_modules/
bower_components/
jspm_packages/

# Python intermediate files
__pycache__/
*.pyc
*.pyo
*.pyd
*.egg-info/
.eggs/

# Python virtual environments
.venv/
.env/

# Python tool-specific cache directories
.pytest_cache/
.mypy_cache/
.ruff_cache/
.tox/

# Compiled object files (intermediate)
*.o
*.obj
*.class

# Package manager cache directories
.npm/
.yarn/
.gradle/
.pnpm-store/

# Framework-specific build/cache directories
.next/
.nuxt/
.svelte-kit/
.angular/

# Generic cache directory
.cache/

# Editor temporary files
*.swp
*.swo
*.swn
*~

# OS-specific metadata files
.DS_Store
Thumbs.db
desktop.ini

# Test coverage output
.coverage
.nyc_output/
htmlcov/
__coverage__/
`

func patternFilePath(root string) string {
	return filepath.Join(root, config.MetaDir, config.IgnoreFile)
}

// Load reads the pattern file under root's metadata directory. Empty lines
// and #-comments are dropped. A missing file yields no patterns.
func Load(root string) ([]string, error) {
	contents, err := os.ReadFile(patternFilePath(root))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ignore file: %w", err)
	}

	var patterns []string
	for _, line := range strings.Split(string(contents), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns, nil
}

// Init seeds the pattern file with the default set. An existing file is
// left untouched.
func Init(root string) error {
	path := patternFilePath(root)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(defaultContent), 0o644); err != nil {
		return fmt.Errorf("failed to create ignore file: %w", err)
	}
	return nil
}

// Add appends a pattern to the pattern file, creating it if needed.
func Add(root, pattern string) error {
	metaDir := filepath.Join(root, config.MetaDir)
	if err := os.MkdirAll(metaDir, 0o755); err != nil {
		return fmt.Errorf("failed to create metadata directory: %w", err)
	}

	path := patternFilePath(root)
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to read ignore file: %w", err)
	}

	var b strings.Builder
	b.Write(existing)
	if len(existing) > 0 && existing[len(existing)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString(pattern)
	b.WriteByte('\n')

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write ignore file: %w", err)
	}
	return nil
}

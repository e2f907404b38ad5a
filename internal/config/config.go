package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// Version is the tool version recorded in newly initialized repositories.
const Version = "0.4.0"

// Metadata directory layout, relative to the repository root.
const (
	MetaDir      = ".cadex"
	IndexFile    = "index.db"
	IgnoreFile   = "ignore"
	ConfigFile   = "config"
	PruneyardDir = "pruneyard"
)

// Config is the per-repository configuration stored in the metadata directory.
type Config struct {
	Version string
}

// New returns a config carrying the current tool version.
func New() *Config {
	return &Config{Version: Version}
}

// Load reads the config file under root's metadata directory. A missing file
// is treated as a repository created before the config existed: one is
// written with the current version.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, MetaDir, ConfigFile)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := New()
		if err := cfg.Save(root); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := New()
	if key := f.Section("").Key("version"); key.String() != "" {
		cfg.Version = key.String()
	}
	return cfg, nil
}

// Save writes the config file under root's metadata directory.
func (c *Config) Save(root string) error {
	f := ini.Empty()
	f.Section("").Key("version").SetValue(c.Version)

	path := filepath.Join(root, MetaDir, ConfigFile)
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// VersionMatch reports whether the stored version matches the running tool.
func (c *Config) VersionMatch() bool {
	return c.Version == Version
}

// WarnVersionMismatch prints a compatibility warning to stderr.
func (c *Config) WarnVersionMismatch() {
	fmt.Fprintln(os.Stderr, "Warning: index version mismatch!")
	fmt.Fprintf(os.Stderr, "  Index was created with: v%s\n", c.Version)
	fmt.Fprintf(os.Stderr, "  Current tool version:   v%s\n", Version)
	fmt.Fprintln(os.Stderr, "  This may cause compatibility issues. Consider running 'cadex update' to refresh the index.")
	fmt.Fprintln(os.Stderr)
}

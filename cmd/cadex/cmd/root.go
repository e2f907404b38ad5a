package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cadex/internal/adapters/filesystem"
	"cadex/internal/adapters/sqlite"
	"cadex/internal/application"
	"cadex/internal/application/commands"
	"cadex/internal/config"
	"cadex/internal/ignore"
	"cadex/internal/ports"
)

var rootCmd = &cobra.Command{
	Use:   "cadex",
	Short: "Content-addressed file index with change detection and deduplication",
	Long: `cadex maintains a persistent, content-addressed index of the files
under a directory tree. It detects changes, finds duplicate content by
hash, and can prune files already preserved in another repository into a
reversible quarantine area.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.ErrorLevel)
}

// setVerbose raises the log level so walk warnings become visible.
func setVerbose(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// deps wires the real adapters into the application layer.
func deps() commands.Deps {
	return commands.Deps{
		OpenStore: func(root string) (ports.IndexStore, error) {
			return sqlite.Load(root)
		},
		OpenMemory: func() (ports.IndexStore, error) {
			return sqlite.NewMemory()
		},
		NewScanner: func(root string, matcher *ignore.Matcher) ports.TreeScanner {
			return filesystem.NewScanner(root, matcher)
		},
		Inspector: filesystem.NewInspector(),
		Janitor:   filesystem.NewJanitor(),
	}
}

// repoRoot locates the repository containing the working directory and
// warns when its index was written by a different tool version.
func repoRoot() (string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := application.FindRoot(workDir)
	if err != nil {
		return "", err
	}
	if cfg, err := config.Load(root); err == nil && !cfg.VersionMatch() {
		cfg.WarnVersionMismatch()
	}
	return root, nil
}

func workDir() (string, error) {
	return os.Getwd()
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}

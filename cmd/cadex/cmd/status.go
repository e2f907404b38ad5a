package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var (
	statusRecursive bool
	statusVerbose   bool
)

var statusCmd = &cobra.Command{
	Use:   "status [path]",
	Short: "Check for differences between the index and the filesystem",
	Long: `Report files that were added, updated, or deleted relative to the
index. Nothing is written.

Without arguments the whole repository is checked. With -r the check
starts from the current directory; with a path argument only that file
or directory is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setVerbose(statusVerbose)

		root, err := repoRoot()
		if err != nil {
			return err
		}
		wd, err := workDir()
		if err != nil {
			return err
		}

		path := ""
		if len(args) > 0 {
			path = args[0]
		}

		result, err := commands.NewStatusCommand(deps(), root, wd, path, statusRecursive, statusVerbose).
			Execute(context.Background())
		if err != nil {
			return err
		}
		printLines(result.Lines)
		return nil
	},
}

func init() {
	statusCmd.Flags().BoolVarP(&statusRecursive, "recursive", "r", false, "recurse into subdirectories")
	statusCmd.Flags().BoolVarP(&statusVerbose, "verbose", "v", false, "show unchanged and ignored files")
	rootCmd.AddCommand(statusCmd)
}

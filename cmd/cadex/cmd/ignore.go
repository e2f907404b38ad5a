package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var ignoreCmd = &cobra.Command{
	Use:   "ignore [pattern]",
	Short: "Add a pattern to the ignore list",
	Long: `Add a glob pattern to the repository's ignore file. Without an
argument, the current directory is added.

Examples:
  cadex ignore '*.log'
  cadex ignore build/
  cadex ignore`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := repoRoot()
		if err != nil {
			return err
		}
		wd, err := workDir()
		if err != nil {
			return err
		}

		pattern := ""
		if len(args) > 0 {
			pattern = args[0]
		}

		result, err := commands.NewIgnoreCommand(root, wd, pattern).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ignoreCmd)
}

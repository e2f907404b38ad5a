package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var lsRecursive bool

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List files in the index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := repoRoot()
		if err != nil {
			return err
		}
		wd, err := workDir()
		if err != nil {
			return err
		}

		result, err := commands.NewLsCommand(deps(), root, wd, lsRecursive).Execute(context.Background())
		if err != nil {
			return err
		}
		printLines(result.Lines)
		return nil
	},
}

func init() {
	lsCmd.Flags().BoolVarP(&lsRecursive, "recursive", "r", false, "recurse into subdirectories")
	rootCmd.AddCommand(lsCmd)
}

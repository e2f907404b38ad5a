package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Find files with identical content",
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

		result, err := commands.NewDuplicatesCommand(deps(), root, wd).Execute(context.Background())
		if err != nil {
			return err
		}
		printLines(result.Lines)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(duplicatesCmd)
}

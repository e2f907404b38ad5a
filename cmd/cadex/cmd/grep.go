package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var grepCmd = &cobra.Command{
	Use:   "grep <hash>",
	Short: "Find indexed files by SHA256 hash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := repoRoot()
		if err != nil {
			return err
		}

		result, err := commands.NewGrepCommand(deps(), root, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		printLines(result.Lines)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(grepCmd)
}

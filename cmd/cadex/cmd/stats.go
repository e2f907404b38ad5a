package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := repoRoot()
		if err != nil {
			return err
		}

		result, err := commands.NewStatsCommand(deps(), root).Execute(context.Background())
		if err != nil {
			return err
		}
		printLines(result.Lines)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

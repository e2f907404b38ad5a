package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var updateVerbose bool

var updateCmd = &cobra.Command{
	Use:   "update [path]",
	Short: "Update the index with changes from the filesystem",
	Long: `Hash and record every added or changed file and drop entries for
deleted files. The index is persisted once at the end of the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setVerbose(updateVerbose)

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

		result, err := commands.NewUpdateCommand(deps(), root, wd, path, updateVerbose).
			Execute(context.Background())
		if err != nil {
			return err
		}
		printLines(result.Lines)
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolVarP(&updateVerbose, "verbose", "v", false, "show ignored files and walk warnings")
	rootCmd.AddCommand(updateCmd)
}

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var (
	prunePurge    bool
	pruneRestore  bool
	pruneForce    bool
	pruneNoIgnore bool
	pruneIgnored  bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune [source]",
	Short: "Quarantine files already preserved in a source repository",
	Long: `Move local files into the pruneyard when their content already
exists in the source repository's index, or when they match ignore
patterns. Pruned files stay under the metadata directory and can be
brought back with --restore or deleted for good with --purge.

Examples:
  cadex prune ../backup              # quarantine duplicates of ../backup
  cadex prune ../backup --ignored    # also quarantine locally-ignored files
  cadex prune --ignored              # quarantine locally-ignored files only
  cadex prune --restore              # undo, moving everything back
  cadex prune --purge                # permanently delete the pruneyard`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := repoRoot()
		if err != nil {
			return err
		}
		ctx := context.Background()

		if pruneRestore {
			result, err := commands.NewRestoreCommand(deps(), root).Execute(ctx)
			if err != nil {
				return err
			}
			printLines(result.Lines)
			return nil
		}

		if prunePurge {
			result, err := commands.NewPurgeCommand(deps(), root, pruneForce, confirm).Execute(ctx)
			if err != nil {
				return err
			}
			printLines(result.Lines)
			return nil
		}

		wd, err := workDir()
		if err != nil {
			return err
		}
		source := ""
		if len(args) > 0 {
			source = args[0]
		}

		result, err := commands.NewPruneCommand(deps(), root, wd, source, pruneNoIgnore, pruneIgnored).Execute(ctx)
		if err != nil {
			return err
		}
		printLines(result.Lines)
		return nil
	},
}

func init() {
	pruneCmd.Flags().BoolVar(&prunePurge, "purge", false, "permanently delete the pruneyard")
	pruneCmd.Flags().BoolVar(&pruneRestore, "restore", false, "move pruned files back")
	pruneCmd.Flags().BoolVar(&pruneForce, "force", false, "skip confirmation prompts")
	pruneCmd.Flags().BoolVar(&pruneNoIgnore, "no-ignore", false, "do not apply the source repository's ignore patterns")
	pruneCmd.Flags().BoolVar(&pruneIgnored, "ignored", false, "also prune files matching local ignore patterns")
	rootCmd.AddCommand(pruneCmd)
}

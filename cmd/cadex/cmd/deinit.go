package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var deinitForce bool

var deinitCmd = &cobra.Command{
	Use:   "deinit",
	Short: "Remove the index and all cadex metadata",
	Long: `Delete the .cadex directory, including the index database, ignore
file, config, and any pruned files still in the pruneyard. The tracked
files themselves are left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := repoRoot()
		if err != nil {
			return err
		}
		result, err := commands.NewDeinitCommand(root, deinitForce, confirm).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	deinitCmd.Flags().BoolVarP(&deinitForce, "force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deinitCmd)
}

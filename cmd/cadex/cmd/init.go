package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cadex/internal/application/commands"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an empty index in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return err
		}

		result, err := commands.NewInitCommand(deps(), workDir).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

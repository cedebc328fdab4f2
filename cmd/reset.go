package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all learning data",
	Long:  "Deletes the database: profile, progress, streaks and chat history. Requires --force.",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes your profile, progress and history.")
			fmt.Println("Run again with --force to confirm.")
			return nil
		}

		p, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if err := os.Remove(p); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("Nothing to reset.")
				return nil
			}
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL sidecar files, if present.
		_ = os.Remove(p + "-wal")
		_ = os.Remove(p + "-shm")

		fmt.Println("All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion")
}

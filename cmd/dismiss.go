package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dismissCmd = &cobra.Command{
	Use:   "dismiss <group-id>",
	Short: "Hide a seasonal lesson group",
	Long:  "Hides a dismissible seasonal group from the dashboard for the rest of its season. Group ids are shown under each group on the dashboard. Urgent near-deadline groups cannot be dismissed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groupID := args[0]

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		if err := st.DismissalRepo().Dismiss(cmd.Context(), groupID); err != nil {
			return fmt.Errorf("dismiss group: %w", err)
		}
		fmt.Printf("Dismissed %s. It returns next season.\n", groupID)
		return nil
	},
}

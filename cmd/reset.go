package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all practice data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			fmt.Println("This erases the profile, history, schedule and quest progress.")
			fmt.Println("Re-run with --force to confirm.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.Clear(); err != nil {
			return fmt.Errorf("clear store: %w", err)
		}
		fmt.Println("All data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip the confirmation")
}

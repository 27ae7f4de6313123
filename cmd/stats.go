package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := st.Profile()
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		fmt.Printf("%s — level %d (%d XP)\n", p.Name, p.Level, p.Experience)
		fmt.Printf("Points:          %d\n", p.Points)
		fmt.Printf("Tests completed: %d (physics %d, math %d)\n",
			p.TestsCompleted, p.PhysicsTests, p.MathTests)
		fmt.Printf("Accuracy:        %d%%\n", p.Accuracy)
		fmt.Printf("Day streak:      %d\n", p.Streak)
		fmt.Printf("Achievements:    %d\n", len(p.Achievements))
		return nil
	},
}

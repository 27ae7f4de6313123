package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all data as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		blob, err := st.Export()
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		if len(args) == 0 {
			fmt.Println(string(blob))
			return nil
		}
		if err := os.WriteFile(args[0], blob, 0o600); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Println("Exported to", args[0])
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/nurlan/ubtprep/internal/app"
	"github.com/nurlan/ubtprep/internal/progress"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Store:  st,
		Engine: progress.NewEngine(st),
	})
}

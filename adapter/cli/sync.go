package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Re-fetch the full record history into the cache",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			return errors.New("sync requires a configured data source")
		}

		count, err := app.Journal.Sync(cmd.Context())
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		fmt.Printf("Synced %d daily records.\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

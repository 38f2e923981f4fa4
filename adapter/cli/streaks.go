package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/internal/analytics"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Show current and record streaks",
	Long: `Compute streaks over the record history: exercise, study, focused
work, good days, abstinence and productive days. Each streak reports
the run ending at the most recent day and the longest run on record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Streaks require a configured data source.")
			return nil
		}

		records, err := app.Journal.Recent(cmd.Context(), recentDays, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		streaks := analytics.ComputeStreaks(records, analytics.StandardPredicates())

		fmt.Println("\n  Streaks")
		fmt.Println(divider())
		for _, s := range streaks {
			last := "never"
			if s.LastDate != nil {
				last = formatDate(*s.LastDate)
			}
			fmt.Printf("  %-16s current: %3d | record: %3d | last: %s\n",
				s.Name, s.Current, s.Record, last)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(streaksCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/internal/analytics"
)

var bestDaysCount int

var bestdaysCmd = &cobra.Command{
	Use:   "bestdays",
	Short: "Rank the best days on record",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Best days require a configured data source.")
			return nil
		}

		records, err := app.Journal.Recent(cmd.Context(), recentDays, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		days := analytics.BestDays(records, bestDaysCount)

		fmt.Printf("\n  Best Days (top %d)\n", bestDaysCount)
		fmt.Println(divider())
		if len(days) == 0 {
			fmt.Println("  No records found.")
			return nil
		}
		for i, d := range days {
			fmt.Printf("  %2d. %s score %.1f | rating %s | %.1fh | %s\n",
				i+1, formatDate(d.Date), d.Score, formatRating(d.Rating),
				d.TotalHours, formatActivities(d.Activities))
		}

		return nil
	},
}

func init() {
	bestdaysCmd.Flags().IntVarP(&bestDaysCount, "count", "n", 5, "number of days to show")
	rootCmd.AddCommand(bestdaysCmd)
}

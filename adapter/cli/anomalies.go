package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/internal/analytics"
)

var anomaliesCmd = &cobra.Command{
	Use:   "anomalies",
	Short: "Find days that deviate far from the norm",
	Long: `Flag days whose productivity score deviates from the window mean by
more than 1.5 standard deviations, in either direction. Needs at
least a week of records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Anomaly detection requires a configured data source.")
			return nil
		}

		records, err := app.Journal.Recent(cmd.Context(), recentDays, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		anomalies := analytics.DetectAnomalies(records)

		fmt.Println("\n  Anomalies")
		fmt.Println(divider())
		if len(anomalies) == 0 {
			fmt.Println("  No anomalous days found.")
			return nil
		}

		for _, a := range anomalies {
			fmt.Printf("  %s [%s] score %.1f (avg %.1f) | %s\n",
				formatDate(a.Date), a.Direction, a.Score, a.BaselineAvg,
				formatActivities(a.Activities))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(anomaliesCmd)
}

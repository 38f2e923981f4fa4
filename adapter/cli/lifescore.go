package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/internal/analytics"
)

var lifescoreCmd = &cobra.Command{
	Use:   "lifescore",
	Short: "Show the aggregate life score",
	Long: `Aggregate six life dimensions (productivity, sleep, physical,
social, abstinence, mood) over the most recent two weeks of records,
each normalized to 0-100, with a trend against the preceding window.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Life score requires a configured data source.")
			return nil
		}

		records, err := app.Journal.Recent(cmd.Context(), recentDays, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		score := analytics.ComputeLifeScore(records)

		fmt.Printf("\n  Life Score: %.1f / 100 (trend %+.1f)\n", score.Total, score.TrendDelta)
		fmt.Println(divider())
		for _, d := range score.Dimensions {
			fmt.Printf("  %-14s %5.1f %s %s\n", d.Name, d.Score, progressBar(d.Score, 20), d.Trend)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(lifescoreCmd)
}

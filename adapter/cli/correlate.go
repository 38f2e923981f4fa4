package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/internal/analytics"
)

var correlateAI bool

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Correlate activities with day ratings",
	Long: `For every activity appearing on at least three rated days, compute
its mean rating and the delta against the all-days baseline, plus
pairwise combo statistics for frequently co-occurring activities.

Examples:
  daybook correlate
  daybook correlate --ai   # include AI commentary`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Correlations require a configured data source.")
			return nil
		}

		records, err := app.Journal.Recent(cmd.Context(), recentDays, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		matrix := analytics.ComputeCorrelations(records)

		fmt.Printf("\n  Activity Correlations (baseline rating %.2f)\n", matrix.BaselineRating)
		fmt.Println(divider())

		if len(matrix.Correlations) == 0 {
			fmt.Println("  Not enough rated days to correlate.")
			return nil
		}

		for _, c := range matrix.Correlations {
			fmt.Printf("  %-16s avg %.2f (%+.2f vs baseline, n=%d)\n",
				c.Activity, c.AvgRating, c.VsBaseline, c.SampleSize)
		}

		if len(matrix.ComboInsights) > 0 {
			fmt.Println("\n  Combos:")
			for _, combo := range matrix.ComboInsights {
				fmt.Printf("  - %s\n", combo)
			}
		}

		if correlateAI && app.Insights != nil {
			fmt.Println("\n  Commentary:")
			fmt.Println(app.Insights.CorrelationCommentary(cmd.Context(), matrix, records))
		}

		return nil
	},
}

func init() {
	correlateCmd.Flags().BoolVar(&correlateAI, "ai", false, "include AI commentary")
	rootCmd.AddCommand(correlateCmd)
}

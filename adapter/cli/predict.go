package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/internal/analytics"
)

var predictAI bool

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Assess burnout risk from recent records",
	Long: `Score burnout risk over the most recent week of records. The score
accumulates independent factors (low ratings, long hours, short sleep,
no exercise, declining trend) and is bucketed into low, medium, high
or critical.

Examples:
  daybook predict
  daybook predict --ai   # include AI advice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Prediction requires a configured data source.")
			return nil
		}

		records, err := app.Journal.Recent(cmd.Context(), recentDays, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		risk := analytics.AssessBurnout(records)

		fmt.Printf("\n  Burnout Risk: %s (%.0f/100)\n", risk.Level, risk.Score)
		fmt.Println(divider())
		if len(risk.Factors) == 0 {
			fmt.Println("  No risk factors detected.")
		}
		for _, f := range risk.Factors {
			fmt.Printf("  - %s\n", f)
		}

		if predictAI && app.Insights != nil {
			fmt.Println("\n  Advice:")
			fmt.Println(app.Insights.BurnoutAdvice(cmd.Context(), risk, records))
		}

		return nil
	},
}

func init() {
	predictCmd.Flags().BoolVar(&predictAI, "ai", false, "include AI advice")
	rootCmd.AddCommand(predictCmd)
}

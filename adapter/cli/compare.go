package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/internal/analytics"
	"github.com/ivkhv/daybook/internal/journal/parsing"
)

var compareCmd = &cobra.Command{
	Use:   "compare <month-a> <month-b>",
	Short: "Compare two months head to head",
	Long: `Compare the headline metrics of two months: average rating, hours,
sleep, exercise rate, productive day rate and abstinence success rate.

Examples:
  daybook compare january february
  daybook compare 2025-03 2025-04`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Comparison requires a configured data source.")
			return nil
		}

		monthA, monthB, err := parsing.ParseCompareMonths(args, time.Now())
		if err != nil {
			return err
		}

		recordsA, err := app.Journal.RecordsForMonth(cmd.Context(), monthA, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records for %s: %w", monthA.Label(), err)
		}
		recordsB, err := app.Journal.RecordsForMonth(cmd.Context(), monthB, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records for %s: %w", monthB.Label(), err)
		}

		cmp := analytics.CompareMonths(recordsA, recordsB, monthA.Label(), monthB.Label())

		fmt.Printf("\n  %s vs %s\n", cmp.PeriodA, cmp.PeriodB)
		fmt.Println(divider())
		for _, d := range cmp.Deltas {
			fmt.Printf("  %-22s %7.2f -> %7.2f  (%+.2f, %s)\n",
				d.Name, d.ValueA, d.ValueB, d.Delta(), d.Direction())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

package goal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/adapter/cli"
	"github.com/ivkhv/daybook/internal/analytics"
	goalsDomain "github.com/ivkhv/daybook/internal/goals/domain"
)

var (
	progressDays    int
	progressRefresh bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress on all goals",
	Long: `Evaluate each goal over its rolling window (week or month) anchored
at the most recent journal record.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Goals == nil || app.Journal == nil {
			fmt.Println("Goal progress requires a configured database and data source.")
			return nil
		}

		goalPtrs, err := app.Goals.ListByOwner(cmd.Context(), app.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		if len(goalPtrs) == 0 {
			fmt.Println("No goals set. Add one with: daybook goal add gym 4")
			return nil
		}

		records, err := app.Journal.Recent(cmd.Context(), progressDays, progressRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		goals := make([]goalsDomain.Goal, 0, len(goalPtrs))
		for _, g := range goalPtrs {
			goals = append(goals, *g)
		}

		progress := analytics.ComputeGoalProgress(goals, records)

		fmt.Println("\n  Goal Progress")
		fmt.Println(strings.Repeat("-", 60))
		for _, p := range progress {
			status := " "
			if p.IsComplete {
				status = "x"
			}
			fmt.Printf("  [%s] %-16s %d/%d per %s  %5.1f%%\n",
				status, p.Goal.TargetActivity, p.Current, p.Target,
				p.Goal.Period, p.Percentage)
		}

		return nil
	},
}

func init() {
	progressCmd.Flags().IntVarP(&progressDays, "days", "d", 0, "record window in days (default 90)")
	progressCmd.Flags().BoolVar(&progressRefresh, "refresh", false, "bypass the record cache")
}

package goal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/adapter/cli"
	goalsDomain "github.com/ivkhv/daybook/internal/goals/domain"
	"github.com/ivkhv/daybook/internal/journal/parsing"
)

var addCmd = &cobra.Command{
	Use:   "add <activity> <count>[/week|/month]",
	Short: "Set an activity goal",
	Long: `Set a rolling activity target. Setting a goal for an activity that
already has one replaces it.

Examples:
  daybook goal add gym 4          # 4 gym days per week
  daybook goal add reading 12/month`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Goals == nil {
			fmt.Println("Goals require a configured database.")
			return nil
		}

		spec, err := parsing.ParseGoalSpec(args)
		if err != nil {
			return err
		}

		g, err := goalsDomain.NewGoal(app.OwnerID, spec.Activity, spec.Target, goalsDomain.Period(spec.Period))
		if err != nil {
			return err
		}

		if err := app.Goals.Upsert(cmd.Context(), g); err != nil {
			return fmt.Errorf("failed to save goal: %w", err)
		}

		fmt.Printf("Goal set: %s %d times per %s\n", g.TargetActivity, g.TargetCount, g.Period)
		return nil
	},
}

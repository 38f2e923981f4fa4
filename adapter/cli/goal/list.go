package goal

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/adapter/cli"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List goals",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Goals == nil {
			fmt.Println("Goals require a configured database.")
			return nil
		}

		goals, err := app.Goals.ListByOwner(cmd.Context(), app.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		if len(goals) == 0 {
			fmt.Println("No goals set. Add one with: daybook goal add gym 4")
			return nil
		}

		fmt.Printf("Goals (%d):\n", len(goals))
		fmt.Println(strings.Repeat("-", 60))
		for _, g := range goals {
			fmt.Printf("  %-16s %d per %s\n", g.TargetActivity, g.TargetCount, g.Period)
			fmt.Printf("    ID: %s | created %s\n", g.ID, g.CreatedAt.Format("2006-01-02"))
		}

		return nil
	},
}

package goal

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/adapter/cli"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <goal-id>",
	Short:   "Delete a goal",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Goals == nil {
			fmt.Println("Goals require a configured database.")
			return nil
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid goal id %q: %w", args[0], err)
		}

		deleted, err := app.Goals.Delete(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}
		if !deleted {
			fmt.Println("No goal found with that ID.")
			return nil
		}

		fmt.Println("Goal deleted.")
		return nil
	},
}

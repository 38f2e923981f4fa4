package goal

import (
	"github.com/spf13/cobra"
)

// Cmd is the goal command group
var Cmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage activity goals",
	Long:  `Set, list, delete and track progress on activity targets like "gym 4 times per week".`,
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(progressCmd)
}

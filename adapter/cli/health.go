package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check backend connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Health == nil {
			return fmt.Errorf("app not initialized")
		}

		overall := app.Health.GetOverallHealth(cmd.Context())

		names := make([]string, 0, len(overall.Checks))
		for name := range overall.Checks {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			result := overall.Checks[name]
			fmt.Printf("  %-10s %-10s %s\n", name, result.Status, result.Message)
		}
		fmt.Printf("overall: %s\n", overall.Status)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/internal/analytics"
	"github.com/ivkhv/daybook/internal/eventbus"
)

var alertsPublish bool

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Check for warning conditions in recent records",
	Long: `Evaluate the alert rules over recent records: exercise gaps, sleep
deficits, rating slumps and abstinence breaks.

Examples:
  daybook alerts
  daybook alerts --publish   # also publish alerts to the event bus`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Alerts require a configured data source.")
			return nil
		}

		records, err := app.Journal.Recent(cmd.Context(), recentDays, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		alerts := analytics.CheckAlerts(records)

		fmt.Println("\n  Alerts")
		fmt.Println(divider())
		if len(alerts) == 0 {
			fmt.Println("  All clear.")
			return nil
		}
		for _, a := range alerts {
			fmt.Printf("  ! %s\n", a)
		}

		if alertsPublish && app.Alerts != nil {
			if err := eventbus.PublishAlerts(cmd.Context(), app.Alerts, app.OwnerID, alerts); err != nil {
				return fmt.Errorf("failed to publish alerts: %w", err)
			}
			fmt.Printf("\n  Published %d alert(s).\n", len(alerts))
		}

		return nil
	},
}

func init() {
	alertsCmd.Flags().BoolVar(&alertsPublish, "publish", false, "publish alerts to the event bus")
	rootCmd.AddCommand(alertsCmd)
}

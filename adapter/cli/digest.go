package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Generate a weekly digest",
	Long: `Summarize the last week against the week before it and ask the AI
generator for a short digest. Needs at least one full week of
records and a configured generator.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Digest requires a configured data source.")
			return nil
		}
		if app.Insights == nil {
			fmt.Println("Digest requires AI commentary; set OPENAI_API_KEY.")
			return nil
		}

		records, err := app.Journal.Recent(cmd.Context(), recentDays, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		fmt.Println("\n  Weekly Digest")
		fmt.Println(divider())
		fmt.Println(app.Insights.WeeklyDigest(cmd.Context(), records))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)
}

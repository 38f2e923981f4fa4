package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivkhv/daybook/internal/analytics"
	"github.com/ivkhv/daybook/internal/journal/parsing"
)

var analyzeAI bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [month]",
	Short: "Analyze a month of journal records",
	Long: `Compute the monthly summary: averages, activity rates, best and
worst days, and the activity frequency breakdown.

Examples:
  daybook analyze              # current month
  daybook analyze 2025-04      # April 2025
  daybook analyze april        # April of the current year
  daybook analyze april --ai   # include AI commentary`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Journal == nil {
			fmt.Println("Analysis requires a configured data source.")
			fmt.Println("Set NOTION_TOKEN and NOTION_DATABASE_ID.")
			return nil
		}

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}
		month, err := parsing.ParseMonth(arg, time.Now())
		if err != nil {
			return err
		}

		records, err := app.Journal.RecordsForMonth(cmd.Context(), month, forceRefresh)
		if err != nil {
			return fmt.Errorf("failed to load records: %w", err)
		}

		analysis := analytics.AnalyzeMonth(records, month.Label())

		fmt.Printf("\n  Month Analysis (%s)\n", analysis.Label)
		fmt.Println(divider())

		if analysis.TotalDays == 0 {
			fmt.Println("  No records for this month.")
			return nil
		}

		fmt.Printf("  Days recorded: %d\n", analysis.TotalDays)
		fmt.Printf("  Avg rating score: %.1f / 6\n", analysis.AvgRatingScore)
		fmt.Printf("  Avg hours worked: %.1f\n", analysis.AvgHours)
		if analysis.AvgSleepHours != nil {
			fmt.Printf("  Avg sleep: %.1fh\n", *analysis.AvgSleepHours)
		}
		fmt.Printf("  Total tasks: %d\n", analysis.TotalTasks)
		fmt.Printf("  Rates: exercise %.0f%% | study %.0f%% | focused work %.0f%% | social %.0f%%\n",
			analysis.ExerciseRate*100, analysis.StudyRate*100,
			analysis.FocusedWorkRate*100, analysis.SocialRate*100)

		if analysis.BestDay != nil {
			fmt.Printf("  Best day:  %s (score %.1f, %s)\n",
				formatDate(analysis.BestDay.Date), analysis.BestDay.Score,
				formatActivities(analysis.BestDay.Activities))
		}
		if analysis.WorstDay != nil {
			fmt.Printf("  Worst day: %s (score %.1f, %s)\n",
				formatDate(analysis.WorstDay.Date), analysis.WorstDay.Score,
				formatActivities(analysis.WorstDay.Activities))
		}

		if len(analysis.ActivityBreakdown) > 0 {
			fmt.Println("\n  Activities:")
			for _, ac := range analysis.ActivityBreakdown {
				fmt.Printf("    %-16s %d days\n", ac.Activity, ac.Days)
			}
		}

		if analyzeAI && app.Insights != nil {
			fmt.Println("\n  Commentary:")
			fmt.Println(app.Insights.MonthInsights(cmd.Context(), records, month.Label()))
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeAI, "ai", false, "include AI commentary")
	rootCmd.AddCommand(analyzeCmd)
}

package coach

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/darrylrachel/blackheart-coach-v0/internal/engine"
	"github.com/darrylrachel/blackheart-coach-v0/internal/service"
)

var (
	analyticsRange string
	analyticsJSON  bool
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Derived metrics over the last 7, 30 or 90 days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			vm, err := service.Analytics(sqldb, analyticsRange, time.Now())
			if err != nil {
				return err
			}
			if analyticsJSON {
				b, err := json.MarshalIndent(vm, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal analytics json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			printAnalytics(cmd, vm)
			return nil
		})
	},
}

func printAnalytics(cmd *cobra.Command, vm *engine.AnalyticsViewModel) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Range: %s to %s (%s)\n", vm.FromDate, vm.ToDate, vm.TimeRange)
	fmt.Fprintf(out, "Weekly consistency: %d%%\n", vm.Overview.WeeklyConsistencyPct)
	fmt.Fprintf(out, "Workouts: %d (avg %d min)\n", vm.Overview.TotalWorkouts, vm.Overview.AvgWorkoutDurationMin)
	fmt.Fprintf(out, "Avg daily calories: %d over %d tracked days\n", vm.Overview.AvgDailyCalories, vm.DaysTracked)
	fmt.Fprintf(out, "Current streak: %d days\n", vm.CurrentStreak)
	fmt.Fprintf(out, "Macro split: P %d%%, C %d%%, F %d%%\n", vm.MacroShare.ProteinPct, vm.MacroShare.CarbsPct, vm.MacroShare.FatPct)
	fmt.Fprintf(out, "Goal progress (%s): %d%%\n", vm.GoalProgress.Metric, vm.GoalProgress.Percent)

	if len(vm.WeightTrend) > 0 {
		fmt.Fprintln(out, "\nWeight")
		start := vm.WeightSummary.Start
		current := vm.WeightSummary.Current
		fmt.Fprintf(out, "Start: %.1f kg (%s)  Current: %.1f kg (%s)\n", start.WeightKg, start.Date, current.WeightKg, current.Date)
		if vm.WeightSummary.ChangeKg != nil {
			fmt.Fprintf(out, "Change: %+.1f kg\n", *vm.WeightSummary.ChangeKg)
		}
	}

	fmt.Fprintln(out, "\nWorkout Frequency")
	for _, d := range vm.WorkoutFrequency {
		fmt.Fprintf(out, "%s\t%d\n", d.Day, d.Count)
	}

	if len(vm.WorkoutTypes) > 0 {
		fmt.Fprintln(out, "\nWorkout Types")
		for _, t := range vm.WorkoutTypes {
			fmt.Fprintf(out, "%s\t%d\n", t.Type, t.Count)
		}
	}

	if len(vm.MealBreakdown) > 0 {
		fmt.Fprintln(out, "\nBy Meal")
		fmt.Fprintln(out, "MEAL\tKCAL\tP\tC\tF")
		for _, m := range vm.MealBreakdown {
			fmt.Fprintf(out, "%s\t%d\t%.1f\t%.1f\t%.1f\n", m.Meal, m.Calories, m.ProteinG, m.CarbsG, m.FatG)
		}
	}
}

func init() {
	rootCmd.AddCommand(analyticsCmd)
	analyticsCmd.Flags().StringVar(&analyticsRange, "range", "30days", "Time range: 7days|30days|90days")
	analyticsCmd.Flags().BoolVar(&analyticsJSON, "json", false, "Output as JSON")
}

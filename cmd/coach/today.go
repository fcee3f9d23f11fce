package coach

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/darrylrachel/blackheart-coach-v0/internal/service"
)

var todayJSON bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against your daily targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.TodaySummary(sqldb, time.Now())
			if err != nil {
				return err
			}
			if todayJSON {
				b, err := json.MarshalIndent(status, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal today json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", status.Date)
			fmt.Fprintf(out, "Intake: %d kcal, P %.1fg, C %.1fg, F %.1fg\n", status.Calories, status.ProteinG, status.CarbsG, status.FatG)
			fmt.Fprintf(out, "Workouts today: %d\n", status.WorkoutsToday)
			if !status.HasProfile {
				fmt.Fprintln(out, "No profile yet; run 'coach profile set' for daily targets.")
				return nil
			}
			fmt.Fprintf(out, "Calories: %d%% of %d kcal (%d remaining)\n", status.CaloriesPct, status.GoalCalories, status.RemainingCalories)
			fmt.Fprintf(out, "Protein: %d%% of %dg\n", status.ProteinPct, status.GoalProteinG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "Output as JSON")
}

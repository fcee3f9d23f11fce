package coach

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/darrylrachel/blackheart-coach-v0/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Log and manage workout sessions",
}

var (
	workoutDate     string
	workoutName     string
	workoutDuration int
	workoutType     string
	workoutMuscles  []string
	workoutNotes    string
)

func workoutInputFromFlags() service.WorkoutInput {
	in := service.WorkoutInput{
		Date:          workoutDate,
		Name:          workoutName,
		WorkoutType:   workoutType,
		MusclesWorked: workoutMuscles,
		Notes:         workoutNotes,
	}
	if workoutDuration > 0 {
		d := workoutDuration
		in.DurationMin = &d
	}
	return in
}

var workoutLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a workout session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.LogWorkout(sqldb, workoutInputFromFlags(), time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workout logged (id %d).\n", id)
			return nil
		})
	},
}

var workoutEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a workout session by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("workout id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			in := service.UpdateWorkoutInput{ID: id, WorkoutInput: workoutInputFromFlags()}
			if err := service.UpdateWorkout(sqldb, in, time.Now()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workout %d updated.\n", id)
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout session by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("workout id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteWorkout(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Workout %d deleted.\n", id)
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List workout sessions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			sessions, err := service.ListWorkouts(sqldb)
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tNAME\tTYPE\tMIN\tMUSCLES")
			for _, s := range sessions {
				duration := "-"
				if s.DurationMin != nil {
					duration = fmt.Sprintf("%d", *s.DurationMin)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\t%s\n",
					s.ID, s.Date.Format("2006-01-02"), s.Name, s.WorkoutType, duration, strings.Join(s.MusclesWorked, ","))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutLogCmd, workoutEditCmd, workoutDeleteCmd, workoutListCmd)

	for _, c := range []*cobra.Command{workoutLogCmd, workoutEditCmd} {
		f := c.Flags()
		f.StringVar(&workoutDate, "date", "", "Date YYYY-MM-DD (defaults to today)")
		f.StringVar(&workoutName, "name", "", "Session name")
		f.IntVar(&workoutDuration, "duration", 0, "Duration in minutes")
		f.StringVar(&workoutType, "type", "", "Workout type, e.g. strength or cardio")
		f.StringSliceVar(&workoutMuscles, "muscles", nil, "Muscle groups worked (comma separated)")
		f.StringVar(&workoutNotes, "notes", "", "Free-form notes")
		_ = c.MarkFlagRequired("name")
	}
}

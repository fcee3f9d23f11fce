package coach

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/darrylrachel/blackheart-coach-v0/internal/service"
)

var nutritionCmd = &cobra.Command{
	Use:   "nutrition",
	Short: "Log and review nutrition entries",
}

var nutritionInput service.NutritionInput

var nutritionLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.LogNutrition(sqldb, nutritionInput, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry logged (id %d).\n", id)
			return nil
		})
	},
}

var nutritionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a nutrition entry by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("nutrition entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteNutrition(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entry %d deleted.\n", id)
			return nil
		})
	},
}

var nutritionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List nutrition entries in date order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			entries, err := service.ListNutrition(sqldb)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No nutrition entries yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tMEAL\tFOOD\tKCAL\tP\tC\tF")
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\n",
					e.ID, e.Date.Format("2006-01-02"), e.MealType, e.FoodName, e.Calories, e.ProteinG, e.CarbsG, e.FatG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(nutritionCmd)
	nutritionCmd.AddCommand(nutritionLogCmd, nutritionDeleteCmd, nutritionListCmd)

	f := nutritionLogCmd.Flags()
	f.StringVar(&nutritionInput.Date, "date", "", "Date YYYY-MM-DD (defaults to today)")
	f.StringVar(&nutritionInput.MealType, "meal", "", "breakfast|lunch|dinner|snack")
	f.StringVar(&nutritionInput.FoodName, "food", "", "Food name")
	f.Float64Var(&nutritionInput.ServingSize, "serving", 1, "Serving size")
	f.StringVar(&nutritionInput.ServingUnit, "serving-unit", "serving", "Serving unit")
	f.IntVar(&nutritionInput.Calories, "calories", 0, "Calories (kcal)")
	f.Float64Var(&nutritionInput.ProteinG, "protein", 0, "Protein in grams")
	f.Float64Var(&nutritionInput.CarbsG, "carbs", 0, "Carbs in grams")
	f.Float64Var(&nutritionInput.FatG, "fat", 0, "Fat in grams")
	_ = nutritionLogCmd.MarkFlagRequired("meal")
	_ = nutritionLogCmd.MarkFlagRequired("food")
	_ = nutritionLogCmd.MarkFlagRequired("calories")
}

package coach

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/darrylrachel/blackheart-coach-v0/internal/service"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Log and review body weight",
}

var weightLogInput service.LogWeightInput

var weightLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record today's weight (one sample per day, later logs overwrite)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.LogWeight(sqldb, weightLogInput, time.Now()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Weight logged.")
			return nil
		})
	},
}

var weightHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show every tracked weight sample",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			history, err := service.WeightHistory(sqldb)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weight samples yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tWEIGHT (KG)")
			for _, s := range history {
				if s.WeightKg == nil {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.1f\n", s.Date.Format("2006-01-02"), *s.WeightKg)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightLogCmd, weightHistoryCmd)

	f := weightLogCmd.Flags()
	f.Float64Var(&weightLogInput.Weight, "weight", 0, "Body weight value")
	f.StringVar(&weightLogInput.Unit, "unit", "kg", "Weight unit: kg or lb")
	f.StringVar(&weightLogInput.Date, "date", "", "Date YYYY-MM-DD (defaults to today)")
	_ = weightLogCmd.MarkFlagRequired("weight")
}

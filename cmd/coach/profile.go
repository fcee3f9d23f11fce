package coach

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
	"github.com/darrylrachel/blackheart-coach-v0/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile and daily targets",
}

var profileInput service.ProfileInput

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update the profile; recomputes TDEE and macro goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.SaveProfile(sqldb, profileInput)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Profile saved.\n")
			printProfile(cmd, p)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile and computed targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			p, err := service.GetProfile(sqldb)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("no profile yet; run 'coach profile set' first")
			}
			printProfile(cmd, p)
			return nil
		})
	},
}

func printProfile(cmd *cobra.Command, p *model.Profile) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "User: %s (%s, %d y, %.1f cm)\n", p.Username, p.Gender, p.Age, p.HeightCm)
	weight, err := service.WeightFromKg(p.CurrentWeightKg, p.PreferredWeightUnit)
	if err != nil {
		weight = p.CurrentWeightKg
	}
	fmt.Fprintf(out, "Weight: %.1f %s\n", weight, p.PreferredWeightUnit)
	fmt.Fprintf(out, "Activity: %s  Goal: %s\n", p.ActivityLevel, p.FitnessGoal)
	fmt.Fprintf(out, "TDEE: %d kcal\n", p.TDEE)
	fmt.Fprintf(out, "Daily targets: %d kcal, P %dg, C %dg, F %dg\n", p.CaloriesGoal, p.ProteinGoalG, p.CarbsGoalG, p.FatGoalG)
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	f := profileSetCmd.Flags()
	f.StringVar(&profileInput.Username, "username", "", "Display name")
	f.StringVar(&profileInput.Gender, "gender", "", "male or female")
	f.Float64Var(&profileInput.Weight, "weight", 0, "Current body weight")
	f.StringVar(&profileInput.WeightUnit, "unit", "kg", "Weight unit: kg or lb")
	f.Float64Var(&profileInput.HeightCm, "height", 0, "Height in cm")
	f.IntVar(&profileInput.Age, "age", 0, "Age in years (defaults to 30 when omitted)")
	f.StringVar(&profileInput.ActivityLevel, "activity", "", "sedentary|lightly_active|moderately_active|very_active|extremely_active")
	f.StringVar(&profileInput.FitnessGoal, "goal", "", "fat_loss|muscle_gain|maintenance")
	_ = profileSetCmd.MarkFlagRequired("gender")
	_ = profileSetCmd.MarkFlagRequired("weight")
	_ = profileSetCmd.MarkFlagRequired("height")
	_ = profileSetCmd.MarkFlagRequired("activity")
	_ = profileSetCmd.MarkFlagRequired("goal")
}

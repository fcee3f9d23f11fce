package service

import (
	"database/sql"
	"fmt"
	"math"
	"time"
)

type TodayStatus struct {
	Date              string  `json:"date"`
	Calories          int     `json:"calories"`
	ProteinG          float64 `json:"protein_g"`
	CarbsG            float64 `json:"carbs_g"`
	FatG              float64 `json:"fat_g"`
	GoalCalories      int     `json:"goal_calories,omitempty"`
	GoalProteinG      int     `json:"goal_protein_g,omitempty"`
	GoalCarbsG        int     `json:"goal_carbs_g,omitempty"`
	GoalFatG          int     `json:"goal_fat_g,omitempty"`
	CaloriesPct       int     `json:"calories_pct"`
	ProteinPct        int     `json:"protein_pct"`
	RemainingCalories int     `json:"remaining_calories,omitempty"`
	WorkoutsToday     int     `json:"workouts_today"`
	HasProfile        bool    `json:"has_profile"`
}

// TodaySummary sums today's nutrition entries and workouts, and when a
// profile exists, reports progress toward its daily goals as clamped
// percentages.
func TodaySummary(db *sql.DB, now time.Time) (*TodayStatus, error) {
	date := now.Format(dateLayout)
	status := &TodayStatus{Date: date}

	err := db.QueryRow(`
SELECT IFNULL(SUM(calories), 0), IFNULL(SUM(protein_g), 0), IFNULL(SUM(carbs_g), 0), IFNULL(SUM(fat_g), 0)
FROM nutrition_entries
WHERE date = ?
`, date).Scan(&status.Calories, &status.ProteinG, &status.CarbsG, &status.FatG)
	if err != nil {
		return nil, fmt.Errorf("sum today's nutrition: %w", err)
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM workouts WHERE date = ?`, date).Scan(&status.WorkoutsToday); err != nil {
		return nil, fmt.Errorf("count today's workouts: %w", err)
	}

	profile, err := GetProfile(db)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		status.HasProfile = true
		status.GoalCalories = profile.CaloriesGoal
		status.GoalProteinG = profile.ProteinGoalG
		status.GoalCarbsG = profile.CarbsGoalG
		status.GoalFatG = profile.FatGoalG
		status.RemainingCalories = profile.CaloriesGoal - status.Calories
		status.CaloriesPct = progressPct(float64(status.Calories), float64(profile.CaloriesGoal))
		status.ProteinPct = progressPct(status.ProteinG, float64(profile.ProteinGoalG))
	}
	return status, nil
}

func progressPct(actual, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(math.Min(actual/goal, 1) * 100))
}

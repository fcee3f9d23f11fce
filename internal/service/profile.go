package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/darrylrachel/blackheart-coach-v0/internal/engine"
	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

type ProfileInput struct {
	Username      string
	Gender        string
	Weight        float64
	WeightUnit    string
	HeightCm      float64
	Age           int
	ActivityLevel string
	FitnessGoal   string
}

// SaveProfile validates and upserts the single user profile, recomputing the
// TDEE and macro goals from the new attributes. The profile always lives in
// row id 1.
func SaveProfile(db *sql.DB, in ProfileInput) (*model.Profile, error) {
	gender, err := model.ParseGender(in.Gender)
	if err != nil {
		return nil, err
	}
	activity, err := model.ParseActivityLevel(in.ActivityLevel)
	if err != nil {
		return nil, err
	}
	goal, err := model.ParseFitnessGoal(in.FitnessGoal)
	if err != nil {
		return nil, err
	}
	weightKg, err := convertWeightToKg(in.Weight, in.WeightUnit)
	if err != nil {
		return nil, err
	}
	if in.HeightCm <= 0 {
		return nil, fmt.Errorf("height must be > 0")
	}
	if err := validateNonNegativeInt("age", in.Age); err != nil {
		return nil, err
	}

	unit := strings.ToLower(strings.TrimSpace(in.WeightUnit))
	switch unit {
	case "":
		unit = "kg"
	case "lbs":
		unit = "lb"
	}

	targets := engine.ComputeEnergyTargets(gender, weightKg, in.HeightCm, activity, goal, in.Age)

	_, err = db.Exec(`
INSERT INTO profiles(
  id, username, gender, current_weight_kg, height_cm, age, activity_level,
  fitness_goal, preferred_weight_unit, tdee, calories_goal, protein_goal_g,
  carbs_goal_g, fat_goal_g
)
VALUES(1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  username=excluded.username,
  gender=excluded.gender,
  current_weight_kg=excluded.current_weight_kg,
  height_cm=excluded.height_cm,
  age=excluded.age,
  activity_level=excluded.activity_level,
  fitness_goal=excluded.fitness_goal,
  preferred_weight_unit=excluded.preferred_weight_unit,
  tdee=excluded.tdee,
  calories_goal=excluded.calories_goal,
  protein_goal_g=excluded.protein_goal_g,
  carbs_goal_g=excluded.carbs_goal_g,
  fat_goal_g=excluded.fat_goal_g,
  updated_at=CURRENT_TIMESTAMP
`, strings.TrimSpace(in.Username), gender, weightKg, in.HeightCm, in.Age, activity,
		goal, unit, targets.TDEE, targets.Calories, targets.ProteinG, targets.CarbsG, targets.FatG)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	return GetProfile(db)
}

// GetProfile returns the stored profile, or nil when none has been created.
func GetProfile(db *sql.DB) (*model.Profile, error) {
	var p model.Profile
	err := db.QueryRow(`
SELECT id, username, gender, current_weight_kg, height_cm, age, activity_level,
       fitness_goal, preferred_weight_unit, tdee, calories_goal, protein_goal_g,
       carbs_goal_g, fat_goal_g, created_at, updated_at
FROM profiles
WHERE id = 1
`).Scan(&p.ID, &p.Username, &p.Gender, &p.CurrentWeightKg, &p.HeightCm, &p.Age,
		&p.ActivityLevel, &p.FitnessGoal, &p.PreferredWeightUnit, &p.TDEE,
		&p.CaloriesGoal, &p.ProteinGoalG, &p.CarbsGoalG, &p.FatGoalG,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}

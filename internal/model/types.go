package model

import (
	"fmt"
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary        ActivityLevel = "sedentary"
	ActivityLightlyActive    ActivityLevel = "lightly_active"
	ActivityModeratelyActive ActivityLevel = "moderately_active"
	ActivityVeryActive       ActivityLevel = "very_active"
	ActivityExtremelyActive  ActivityLevel = "extremely_active"
)

type FitnessGoal string

const (
	GoalFatLoss     FitnessGoal = "fat_loss"
	GoalMuscleGain  FitnessGoal = "muscle_gain"
	GoalMaintenance FitnessGoal = "maintenance"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func ParseGender(s string) (Gender, error) {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale:
		return g, nil
	default:
		return "", fmt.Errorf("invalid gender %q (use male or female)", s)
	}
}

func ParseActivityLevel(s string) (ActivityLevel, error) {
	switch a := ActivityLevel(strings.ToLower(strings.TrimSpace(s))); a {
	case ActivitySedentary, ActivityLightlyActive, ActivityModeratelyActive, ActivityVeryActive, ActivityExtremelyActive:
		return a, nil
	default:
		return "", fmt.Errorf("invalid activity level %q (use sedentary, lightly_active, moderately_active, very_active, extremely_active)", s)
	}
}

func ParseFitnessGoal(s string) (FitnessGoal, error) {
	switch g := FitnessGoal(strings.ToLower(strings.TrimSpace(s))); g {
	case GoalFatLoss, GoalMuscleGain, GoalMaintenance:
		return g, nil
	default:
		return "", fmt.Errorf("invalid fitness goal %q (use fat_loss, muscle_gain, maintenance)", s)
	}
}

func ParseMealType(s string) (MealType, error) {
	switch m := MealType(strings.ToLower(strings.TrimSpace(s))); m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return m, nil
	default:
		return "", fmt.Errorf("invalid meal type %q (use breakfast, lunch, dinner, snack)", s)
	}
}

// Profile holds the user's physical attributes together with the energy
// targets derived from them. Targets are recomputed on every profile save.
type Profile struct {
	ID                  int64
	Username            string
	Gender              Gender
	CurrentWeightKg     float64
	HeightCm            float64
	Age                 int
	ActivityLevel       ActivityLevel
	FitnessGoal         FitnessGoal
	PreferredWeightUnit string
	TDEE                int
	CaloriesGoal        int
	ProteinGoalG        int
	CarbsGoalG          int
	FatGoalG            int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// WeightSample is one body-weight reading per calendar day. Logging the same
// day twice overwrites the earlier value.
type WeightSample struct {
	ID       int64
	Date     time.Time
	WeightKg *float64
}

type WorkoutSession struct {
	ID            int64
	Date          time.Time
	Name          string
	DurationMin   *int
	WorkoutType   string
	MusclesWorked []string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type NutritionEntry struct {
	ID          int64
	Date        time.Time
	MealType    MealType
	FoodName    string
	ServingSize float64
	ServingUnit string
	Calories    int
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	CreatedAt   time.Time
}

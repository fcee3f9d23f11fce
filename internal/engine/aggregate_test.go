package engine_test

import (
	"testing"
	"time"

	"github.com/darrylrachel/blackheart-coach-v0/internal/engine"
	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

func entryOn(date time.Time, meal model.MealType, calories int, protein, carbs, fat float64) model.NutritionEntry {
	return model.NutritionEntry{
		Date:     date,
		MealType: meal,
		FoodName: "test food",
		Calories: calories,
		ProteinG: protein,
		CarbsG:   carbs,
		FatG:     fat,
	}
}

func workoutOn(date time.Time, name, workoutType string, durationMin int) model.WorkoutSession {
	w := model.WorkoutSession{
		Date:        date,
		Name:        name,
		WorkoutType: workoutType,
	}
	if durationMin > 0 {
		w.DurationMin = &durationMin
	}
	return w
}

func TestNutritionByDaySumsEntries(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	entries := []model.NutritionEntry{
		entryOn(day, model.MealBreakfast, 400, 30, 40, 10),
		entryOn(day, model.MealLunch, 600, 45, 60, 20),
		entryOn(day.AddDate(0, 0, 1), model.MealBreakfast, 350, 25, 35, 12),
	}

	byDay := engine.NutritionByDay(entries)
	if len(byDay) != 2 {
		t.Fatalf("expected 2 tracked days, got %d", len(byDay))
	}
	first := byDay["2026-03-10"]
	if first.Calories != 1000 || first.ProteinG != 75 || first.CarbsG != 100 || first.FatG != 30 {
		t.Fatalf("expected summed totals 1000/75/100/30, got %+v", first)
	}
}

func TestNutritionDaySeriesSortedAscending(t *testing.T) {
	t.Parallel()

	byDay := map[string]engine.NutritionTotals{
		"2026-03-12": {Calories: 1800},
		"2026-03-10": {Calories: 2000},
		"2026-03-11": {Calories: 1900},
	}
	series := engine.NutritionDaySeries(byDay)
	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}
	if series[0].Date != "2026-03-10" || series[2].Date != "2026-03-12" {
		t.Fatalf("expected date-ascending series, got %s .. %s", series[0].Date, series[2].Date)
	}
}

func TestWorkoutsByWeekdayAlwaysSevenBuckets(t *testing.T) {
	t.Parallel()

	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local)
	workouts := []model.WorkoutSession{
		workoutOn(sunday, "Full Body", "strength", 60),
		workoutOn(sunday.AddDate(0, 0, 3), "Intervals", "cardio", 30),
		workoutOn(sunday.AddDate(0, 0, 7), "Full Body", "strength", 60),
	}

	counts := engine.WorkoutsByWeekday(workouts)
	if counts[0] != 2 {
		t.Fatalf("expected 2 Sunday workouts, got %d", counts[0])
	}
	if counts[3] != 1 {
		t.Fatalf("expected 1 Wednesday workout, got %d", counts[3])
	}
	if counts[1] != 0 || counts[6] != 0 {
		t.Fatalf("expected empty buckets to stay zero, got %v", counts)
	}

	empty := engine.WorkoutsByWeekday(nil)
	if empty != [7]int{} {
		t.Fatalf("expected all-zero histogram for no workouts, got %v", empty)
	}
}

func TestWorkoutsByTypeDefaultsToOther(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.Local)
	workouts := []model.WorkoutSession{
		workoutOn(day, "Push", "strength", 45),
		workoutOn(day.AddDate(0, 0, 1), "Pull", "strength", 45),
		workoutOn(day.AddDate(0, 0, 2), "Walk", "", 20),
	}

	counts := engine.WorkoutsByType(workouts)
	if counts["strength"] != 2 {
		t.Fatalf("expected 2 strength workouts, got %d", counts["strength"])
	}
	if counts["other"] != 1 {
		t.Fatalf("expected 1 untagged workout in other, got %d", counts["other"])
	}
	if _, ok := counts["cardio"]; ok {
		t.Fatalf("expected unseen tags to produce no bucket")
	}
}

func TestNutritionByMealTypeOnlySeenMeals(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	entries := []model.NutritionEntry{
		entryOn(day, model.MealBreakfast, 300, 20, 30, 10),
		entryOn(day, model.MealBreakfast, 200, 15, 20, 5),
		entryOn(day, model.MealDinner, 700, 50, 60, 25),
	}

	byMeal := engine.NutritionByMealType(entries)
	if len(byMeal) != 2 {
		t.Fatalf("expected 2 meal buckets, got %d", len(byMeal))
	}
	breakfast := byMeal[model.MealBreakfast]
	if breakfast.Calories != 500 || breakfast.ProteinG != 35 {
		t.Fatalf("expected breakfast totals 500 kcal / 35g protein, got %+v", breakfast)
	}
	if _, ok := byMeal[model.MealLunch]; ok {
		t.Fatalf("expected no bucket for unseen meal type")
	}
}

package engine_test

import (
	"testing"

	"github.com/darrylrachel/blackheart-coach-v0/internal/engine"
	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

func TestComputeAnalyticsEmptyCollections(t *testing.T) {
	t.Parallel()

	vm, err := engine.ComputeAnalytics(nil, nil, nil, engine.TimeRange30Days, nil, testNow)
	if err != nil {
		t.Fatalf("compute analytics: %v", err)
	}

	if vm.Overview.WeeklyConsistencyPct != 0 || vm.Overview.AvgWorkoutDurationMin != 0 ||
		vm.Overview.AvgDailyCalories != 0 || vm.Overview.TotalWorkouts != 0 {
		t.Fatalf("expected zeroed overview, got %+v", vm.Overview)
	}
	if vm.MacroShare.ProteinPct != 33 || vm.MacroShare.CarbsPct != 34 || vm.MacroShare.FatPct != 33 {
		t.Fatalf("expected default macro split, got %+v", vm.MacroShare)
	}
	if len(vm.WeightTrend) != 0 || len(vm.NutritionSeries) != 0 || len(vm.WorkoutTypes) != 0 {
		t.Fatalf("expected empty series, got %+v", vm)
	}
	if len(vm.WorkoutFrequency) != 7 {
		t.Fatalf("expected 7 weekday buckets even when empty, got %d", len(vm.WorkoutFrequency))
	}
	if vm.CurrentStreak != 0 {
		t.Fatalf("expected 0 streak, got %d", vm.CurrentStreak)
	}
	if vm.GoalProgress.Metric != "Consistency" || vm.GoalProgress.Percent != 50 {
		t.Fatalf("expected default goal progress without profile, got %+v", vm.GoalProgress)
	}
	if vm.WeightSummary.Start != nil || vm.WeightSummary.ChangeKg != nil {
		t.Fatalf("expected empty weight summary, got %+v", vm.WeightSummary)
	}
}

func TestComputeAnalyticsRejectsUnknownRange(t *testing.T) {
	t.Parallel()

	if _, err := engine.ComputeAnalytics(nil, nil, nil, engine.TimeRange("14days"), nil, testNow); err == nil {
		t.Fatalf("expected error for unknown time range")
	}
}

func TestComputeAnalyticsEndToEnd(t *testing.T) {
	t.Parallel()

	profile := &model.Profile{
		Gender:          model.GenderMale,
		CurrentWeightKg: 70,
		HeightCm:        175,
		ActivityLevel:   model.ActivityModeratelyActive,
		FitnessGoal:     model.GoalMuscleGain,
	}

	var nutrition []model.NutritionEntry
	for i := 0; i < 3; i++ {
		day := testNow.AddDate(0, 0, -i)
		nutrition = append(nutrition,
			entryOn(day, model.MealBreakfast, 800, 60, 80, 24),
			entryOn(day, model.MealLunch, 700, 50, 70, 21),
			entryOn(day, model.MealDinner, 500, 40, 50, 15),
		)
	}
	workouts := []model.WorkoutSession{
		workoutOn(testNow, "Push Day", "strength", 60),
		workoutOn(testNow.AddDate(0, 0, -1), "Pull Day", "strength", 50),
		workoutOn(testNow.AddDate(0, 0, -2), "Run", "cardio", 40),
		workoutOn(testNow.AddDate(0, 0, -40), "Old Session", "strength", 45),
	}
	w1, w2 := 71.0, 70.0
	weights := []model.WeightSample{
		{Date: testNow.AddDate(0, 0, -20), WeightKg: &w1},
		{Date: testNow.AddDate(0, 0, -1), WeightKg: &w2},
	}

	vm, err := engine.ComputeAnalytics(weights, workouts, nutrition, engine.TimeRange30Days, profile, testNow)
	if err != nil {
		t.Fatalf("compute analytics: %v", err)
	}

	if vm.Overview.TotalWorkouts != 3 {
		t.Fatalf("expected 3 workouts in the 30-day window, got %d", vm.Overview.TotalWorkouts)
	}
	if vm.Overview.AvgDailyCalories != 2000 {
		t.Fatalf("expected 2000 kcal daily average, got %d", vm.Overview.AvgDailyCalories)
	}
	if vm.Overview.AvgWorkoutDurationMin != 50 {
		t.Fatalf("expected 50 min average duration, got %d", vm.Overview.AvgWorkoutDurationMin)
	}
	if vm.DaysTracked != 3 {
		t.Fatalf("expected 3 tracked days, got %d", vm.DaysTracked)
	}

	// 150/200/60 grams per day in a 410 g daily total.
	if vm.MacroShare.ProteinPct != 37 || vm.MacroShare.CarbsPct != 49 || vm.MacroShare.FatPct != 15 {
		t.Fatalf("expected gram-based share 37/49/15, got %+v", vm.MacroShare)
	}

	if vm.CurrentStreak != 3 {
		t.Fatalf("expected 3-day streak, got %d", vm.CurrentStreak)
	}

	if len(vm.WorkoutTypes) != 2 {
		t.Fatalf("expected 2 workout type buckets, got %d", len(vm.WorkoutTypes))
	}
	if vm.WorkoutTypes[0].Type != "strength" || vm.WorkoutTypes[0].Count != 2 {
		t.Fatalf("expected strength x2 first, got %+v", vm.WorkoutTypes[0])
	}

	if vm.GoalProgress.Metric != "Workout Frequency" {
		t.Fatalf("expected muscle_gain progress metric, got %q", vm.GoalProgress.Metric)
	}
	if vm.GoalProgress.Percent != 19 {
		t.Fatalf("expected 3/16 workouts to be 19%%, got %d", vm.GoalProgress.Percent)
	}

	if len(vm.WeightTrend) != 2 {
		t.Fatalf("expected 2 weight points, got %d", len(vm.WeightTrend))
	}
	if vm.WeightSummary.ChangeKg == nil || *vm.WeightSummary.ChangeKg != -1 {
		t.Fatalf("expected -1 kg change, got %+v", vm.WeightSummary.ChangeKg)
	}

	if len(vm.MealBreakdown) != 3 {
		t.Fatalf("expected 3 meal buckets, got %d", len(vm.MealBreakdown))
	}
	if vm.MealBreakdown[0].Meal != "breakfast" || vm.MealBreakdown[0].Calories != 2400 {
		t.Fatalf("expected breakfast first with 2400 kcal, got %+v", vm.MealBreakdown[0])
	}
}

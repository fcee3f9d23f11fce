package engine

import (
	"sort"
	"time"

	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type OverviewSummary struct {
	WeeklyConsistencyPct  int `json:"weekly_consistency_pct"`
	AvgWorkoutDurationMin int `json:"avg_workout_duration_min"`
	AvgDailyCalories      int `json:"avg_daily_calories"`
	TotalWorkouts         int `json:"total_workouts"`
}

type WeightPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight_kg"`
}

type WeightSummary struct {
	Start    *WeightPoint `json:"start,omitempty"`
	Current  *WeightPoint `json:"current,omitempty"`
	ChangeKg *float64     `json:"change_kg,omitempty"`
}

type WeekdayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type MealBreakdown struct {
	Meal string `json:"meal"`
	NutritionTotals
}

// AnalyticsViewModel is the full derived state behind the analytics and
// progress views, recomputed from raw collections on every call.
type AnalyticsViewModel struct {
	TimeRange        TimeRange                `json:"time_range"`
	FromDate         string                   `json:"from_date"`
	ToDate           string                   `json:"to_date"`
	Overview         OverviewSummary          `json:"overview"`
	WeightTrend      []WeightPoint            `json:"weight_trend"`
	WeightSummary    WeightSummary            `json:"weight_summary"`
	WorkoutFrequency []WeekdayCount           `json:"workout_frequency"`
	WorkoutTypes     []TypeCount              `json:"workout_types"`
	NutritionSeries  []DailyNutritionTotals   `json:"nutrition_series"`
	MealBreakdown    []MealBreakdown          `json:"meal_breakdown"`
	MacroShare       MacroShareDistribution   `json:"macro_share"`
	DaysTracked      int                      `json:"days_tracked"`
	CurrentStreak    int                      `json:"current_streak"`
	GoalProgress     GoalProgress             `json:"goal_progress"`
}

// ComputeAnalytics filters the raw collections to the requested window and
// derives every dashboard metric. It is deterministic given its inputs; the
// only error is an unknown time range. Goal progress reads the unfiltered
// weight history so the "starting weight" stays the earliest ever tracked.
func ComputeAnalytics(
	weights []model.WeightSample,
	workouts []model.WorkoutSession,
	nutrition []model.NutritionEntry,
	timeRange TimeRange,
	profile *model.Profile,
	now time.Time,
) (*AnalyticsViewModel, error) {
	r, err := ParseTimeRange(string(timeRange))
	if err != nil {
		return nil, err
	}
	window := WindowForRange(r, now)

	weightsInWindow := FilterByWindow(weights, window, func(s model.WeightSample) time.Time { return s.Date })
	workoutsInWindow := FilterByWindow(workouts, window, func(w model.WorkoutSession) time.Time { return w.Date })
	nutritionInWindow := FilterByWindow(nutrition, window, func(e model.NutritionEntry) time.Time { return e.Date })

	byDay := NutritionByDay(nutritionInWindow)

	vm := &AnalyticsViewModel{
		TimeRange: r,
		FromDate:  dayKey(window.From),
		ToDate:    dayKey(window.To),
		Overview: OverviewSummary{
			WeeklyConsistencyPct:  WeeklyConsistency(workoutsInWindow, now),
			AvgWorkoutDurationMin: AverageWorkoutDuration(workoutsInWindow),
			AvgDailyCalories:      AverageDailyCalories(byDay),
			TotalWorkouts:         len(workoutsInWindow),
		},
		WeightTrend:      weightTrend(weightsInWindow),
		WorkoutFrequency: weekdaySeries(WorkoutsByWeekday(workoutsInWindow)),
		WorkoutTypes:     typeSeries(WorkoutsByType(workoutsInWindow)),
		NutritionSeries:  NutritionDaySeries(byDay),
		MealBreakdown:    mealSeries(NutritionByMealType(nutritionInWindow)),
		MacroShare:       MacroShare(byDay),
		DaysTracked:      len(byDay),
		CurrentStreak:    CurrentStreak(workoutsInWindow, now),
	}
	vm.WeightSummary = weightSummary(vm.WeightTrend)

	goal := model.GoalMaintenance
	if profile != nil {
		goal = profile.FitnessGoal
	}
	vm.GoalProgress = ComputeGoalProgress(goal, weights, len(workoutsInWindow))

	return vm, nil
}

func weightTrend(samples []model.WeightSample) []WeightPoint {
	points := make([]WeightPoint, 0, len(samples))
	for _, s := range samples {
		if s.WeightKg == nil {
			continue
		}
		points = append(points, WeightPoint{Date: dayKey(s.Date), WeightKg: *s.WeightKg})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}

func weightSummary(trend []WeightPoint) WeightSummary {
	if len(trend) == 0 {
		return WeightSummary{}
	}
	start := trend[0]
	current := trend[len(trend)-1]
	out := WeightSummary{Start: &start, Current: &current}
	if len(trend) > 1 {
		change := current.WeightKg - start.WeightKg
		out.ChangeKg = &change
	}
	return out
}

func weekdaySeries(counts [7]int) []WeekdayCount {
	out := make([]WeekdayCount, 0, 7)
	for i, label := range weekdayLabels {
		out = append(out, WeekdayCount{Day: label, Count: counts[i]})
	}
	return out
}

func typeSeries(counts map[string]int) []TypeCount {
	out := make([]TypeCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TypeCount{Type: tag, Count: count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Type < out[j].Type
		}
		return out[i].Count > out[j].Count
	})
	return out
}

var mealOrder = []model.MealType{model.MealBreakfast, model.MealLunch, model.MealDinner, model.MealSnack}

func mealSeries(byMeal map[model.MealType]NutritionTotals) []MealBreakdown {
	out := make([]MealBreakdown, 0, len(byMeal))
	for _, meal := range mealOrder {
		totals, ok := byMeal[meal]
		if !ok {
			continue
		}
		out = append(out, MealBreakdown{Meal: string(meal), NutritionTotals: totals})
	}
	return out
}

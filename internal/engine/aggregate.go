package engine

import (
	"sort"

	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

type NutritionTotals struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

func (t *NutritionTotals) add(e model.NutritionEntry) {
	t.Calories += e.Calories
	t.ProteinG += e.ProteinG
	t.CarbsG += e.CarbsG
	t.FatG += e.FatG
}

type DailyNutritionTotals struct {
	Date string `json:"date"`
	NutritionTotals
}

// NutritionByDay sums calories and macros per calendar date. Multiple entries
// on a day accumulate; only days that appear in the input produce keys.
func NutritionByDay(entries []model.NutritionEntry) map[string]NutritionTotals {
	byDay := make(map[string]NutritionTotals, len(entries))
	for _, e := range entries {
		totals := byDay[dayKey(e.Date)]
		totals.add(e)
		byDay[dayKey(e.Date)] = totals
	}
	return byDay
}

// NutritionDaySeries flattens per-day totals into a date-ascending series.
func NutritionDaySeries(byDay map[string]NutritionTotals) []DailyNutritionTotals {
	out := make([]DailyNutritionTotals, 0, len(byDay))
	for date, totals := range byDay {
		out = append(out, DailyNutritionTotals{Date: date, NutritionTotals: totals})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// WorkoutsByWeekday counts workouts into seven fixed buckets, Sunday=0
// through Saturday=6. All buckets are present even when zero.
func WorkoutsByWeekday(workouts []model.WorkoutSession) [7]int {
	var counts [7]int
	for _, w := range workouts {
		counts[int(w.Date.Weekday())]++
	}
	return counts
}

// WorkoutsByType counts workouts per workout-type tag. Untagged sessions land
// in the "other" bucket; tags that never appear produce no bucket.
func WorkoutsByType(workouts []model.WorkoutSession) map[string]int {
	counts := make(map[string]int)
	for _, w := range workouts {
		tag := w.WorkoutType
		if tag == "" {
			tag = "other"
		}
		counts[tag]++
	}
	return counts
}

// NutritionByMealType sums totals per meal type across the input. Only meal
// types that appear produce buckets.
func NutritionByMealType(entries []model.NutritionEntry) map[model.MealType]NutritionTotals {
	byMeal := make(map[model.MealType]NutritionTotals)
	for _, e := range entries {
		totals := byMeal[e.MealType]
		totals.add(e)
		byMeal[e.MealType] = totals
	}
	return byMeal
}

package engine

import (
	"math"
	"sort"
	"time"

	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

// WeeklyConsistency is the share of the current calendar week (Sunday through
// Saturday, anchored on now rather than the analytics window) with at least
// one workout, as a rounded percentage. An empty workout set scores 0.
func WeeklyConsistency(workouts []model.WorkoutSession, now time.Time) int {
	if len(workouts) == 0 {
		return 0
	}
	weekStart := beginningOfDay(now).AddDate(0, 0, -int(now.Weekday()))
	week := DateWindow{From: weekStart, To: weekStart.AddDate(0, 0, 6)}

	days := make(map[string]struct{})
	for _, w := range workouts {
		if week.Contains(w.Date) {
			days[dayKey(w.Date)] = struct{}{}
		}
	}
	return int(math.Round(float64(len(days)) / 7 * 100))
}

// AverageWorkoutDuration returns the mean session length in minutes, rounded.
// Sessions without a recorded duration count as zero minutes.
func AverageWorkoutDuration(workouts []model.WorkoutSession) int {
	if len(workouts) == 0 {
		return 0
	}
	total := 0
	for _, w := range workouts {
		if w.DurationMin != nil {
			total += *w.DurationMin
		}
	}
	return int(math.Round(float64(total) / float64(len(workouts))))
}

// AverageDailyCalories divides total intake by the number of distinct days
// with at least one entry. No tracked days yields 0, never a division error.
func AverageDailyCalories(byDay map[string]NutritionTotals) int {
	if len(byDay) == 0 {
		return 0
	}
	total := 0
	for _, d := range byDay {
		total += d.Calories
	}
	return int(math.Round(float64(total) / float64(len(byDay))))
}

type MacroShareDistribution struct {
	ProteinPct int `json:"protein_pct"`
	CarbsPct   int `json:"carbs_pct"`
	FatPct     int `json:"fat_pct"`
}

// MacroShare expresses each macro's gram total as a percentage of the sum of
// the three gram totals. The ratio is gram-based, not calorie-weighted; a zero
// total returns the even 33/34/33 split.
func MacroShare(byDay map[string]NutritionTotals) MacroShareDistribution {
	var protein, carbs, fat float64
	for _, d := range byDay {
		protein += d.ProteinG
		carbs += d.CarbsG
		fat += d.FatG
	}
	total := protein + carbs + fat
	if total == 0 {
		return MacroShareDistribution{ProteinPct: 33, CarbsPct: 34, FatPct: 33}
	}
	return MacroShareDistribution{
		ProteinPct: int(math.Round(protein / total * 100)),
		CarbsPct:   int(math.Round(carbs / total * 100)),
		FatPct:     int(math.Round(fat / total * 100)),
	}
}

// CurrentStreak counts consecutive workout days ending at (or the day before)
// today. Distinct days only: two sessions on one date advance the streak once.
// The walk stops at the first gap of more than one day.
func CurrentStreak(workouts []model.WorkoutSession, now time.Time) int {
	if len(workouts) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(workouts))
	days := make([]time.Time, 0, len(workouts))
	for _, w := range workouts {
		key := dayKey(w.Date)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, beginningOfDay(w.Date))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	last := beginningOfDay(now)
	for _, day := range days {
		if daysBetween(last, day) > 1 {
			break
		}
		streak++
		last = day
	}
	return streak
}

type GoalProgress struct {
	Metric  string `json:"metric"`
	Percent int    `json:"percent"`
}

// ComputeGoalProgress scores progress toward the profile's fitness goal.
// Weight-based goals read the earliest and latest tracked weights from the
// full history; muscle gain uses the workout count inside the analytics
// window against an assumed 16-sessions-per-month target.
func ComputeGoalProgress(goal model.FitnessGoal, weightHistory []model.WeightSample, workoutsInWindow int) GoalProgress {
	start, current := startAndCurrentWeight(weightHistory)
	hasWeights := start != 0 && current != 0

	switch {
	case goal == model.GoalFatLoss && hasWeights:
		// Target is losing 10% of the starting weight.
		target := start * 0.9
		pct := (start - current) / (start - target) * 100
		return GoalProgress{Metric: "Weight Loss", Percent: clampPercent(pct)}
	case goal == model.GoalMuscleGain:
		pct := float64(workoutsInWindow) / 16 * 100
		return GoalProgress{Metric: "Workout Frequency", Percent: clampPercent(pct)}
	default:
		if hasWeights {
			change := math.Abs((current - start) / start * 100)
			pct := (2 - change) / 2 * 100
			return GoalProgress{Metric: "Weight Stability", Percent: clampPercent(pct)}
		}
		return GoalProgress{Metric: "Consistency", Percent: 50}
	}
}

func startAndCurrentWeight(history []model.WeightSample) (start, current float64) {
	tracked := make([]model.WeightSample, 0, len(history))
	for _, s := range history {
		if s.WeightKg != nil {
			tracked = append(tracked, s)
		}
	}
	if len(tracked) == 0 {
		return 0, 0
	}
	sort.SliceStable(tracked, func(i, j int) bool { return tracked[i].Date.Before(tracked[j].Date) })
	return *tracked[0].WeightKg, *tracked[len(tracked)-1].WeightKg
}

func clampPercent(pct float64) int {
	return int(math.Round(math.Min(100, math.Max(0, pct))))
}

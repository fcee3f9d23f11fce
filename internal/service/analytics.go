package service

import (
	"database/sql"
	"time"

	"github.com/darrylrachel/blackheart-coach-v0/internal/engine"
)

// Analytics loads the raw collections and derives the full dashboard view
// model for the requested time range ("7days", "30days" or "90days").
func Analytics(db *sql.DB, timeRange string, now time.Time) (*engine.AnalyticsViewModel, error) {
	r, err := engine.ParseTimeRange(timeRange)
	if err != nil {
		return nil, err
	}

	weights, err := WeightHistory(db)
	if err != nil {
		return nil, err
	}
	workouts, err := ListWorkouts(db)
	if err != nil {
		return nil, err
	}
	nutrition, err := ListNutrition(db)
	if err != nil {
		return nil, err
	}
	profile, err := GetProfile(db)
	if err != nil {
		return nil, err
	}

	return engine.ComputeAnalytics(weights, workouts, nutrition, r, profile, now)
}

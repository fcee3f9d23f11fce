package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

type LogWeightInput struct {
	Weight float64
	Unit   string
	Date   string
}

// LogWeight records one body-weight reading per calendar day. Logging the
// same day twice replaces the earlier value.
func LogWeight(db *sql.DB, in LogWeightInput, now time.Time) error {
	weightKg, err := convertWeightToKg(in.Weight, in.Unit)
	if err != nil {
		return err
	}
	date, err := normalizeDate(in.Date, now)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
INSERT INTO weight_samples(date, weight_kg)
VALUES(?, ?)
ON CONFLICT(date) DO UPDATE SET weight_kg=excluded.weight_kg
`, date, weightKg)
	if err != nil {
		return fmt.Errorf("log weight for %s: %w", date, err)
	}

	// Keep the profile's current weight in step with the newest reading.
	if _, err := db.Exec(`
UPDATE profiles
SET current_weight_kg = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = 1 AND NOT EXISTS (SELECT 1 FROM weight_samples WHERE date > ?)
`, weightKg, date); err != nil {
		return fmt.Errorf("sync profile weight: %w", err)
	}
	return nil
}

// WeightHistory returns every tracked sample ordered by date ascending.
func WeightHistory(db *sql.DB) ([]model.WeightSample, error) {
	rows, err := db.Query(`SELECT id, date, weight_kg FROM weight_samples ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list weight history: %w", err)
	}
	defer rows.Close()

	samples := make([]model.WeightSample, 0)
	for rows.Next() {
		var s model.WeightSample
		var dateRaw string
		var weight sql.NullFloat64
		if err := rows.Scan(&s.ID, &dateRaw, &weight); err != nil {
			return nil, fmt.Errorf("scan weight sample: %w", err)
		}
		s.Date, err = parseDate(dateRaw)
		if err != nil {
			return nil, err
		}
		if weight.Valid {
			v := weight.Float64
			s.WeightKg = &v
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight history: %w", err)
	}
	return samples, nil
}

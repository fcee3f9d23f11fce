package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

type WorkoutInput struct {
	Date          string
	Name          string
	DurationMin   *int
	WorkoutType   string
	MusclesWorked []string
	Notes         string
}

type UpdateWorkoutInput struct {
	ID int64
	WorkoutInput
}

func LogWorkout(db *sql.DB, in WorkoutInput, now time.Time) (int64, error) {
	date, muscles, err := validateWorkout(&in, now)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO workouts(date, name, duration_min, workout_type, muscles_worked, notes)
VALUES(?, ?, ?, ?, ?, ?)
`, date, strings.TrimSpace(in.Name), in.DurationMin, normalizeWorkoutType(in.WorkoutType), muscles, strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("log workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve workout id: %w", err)
	}
	return id, nil
}

func UpdateWorkout(db *sql.DB, in UpdateWorkoutInput, now time.Time) error {
	if in.ID <= 0 {
		return fmt.Errorf("workout id must be > 0")
	}
	date, muscles, err := validateWorkout(&in.WorkoutInput, now)
	if err != nil {
		return err
	}

	res, err := db.Exec(`
UPDATE workouts
SET date = ?, name = ?, duration_min = ?, workout_type = ?, muscles_worked = ?,
    notes = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, date, strings.TrimSpace(in.Name), in.DurationMin, normalizeWorkoutType(in.WorkoutType), muscles, strings.TrimSpace(in.Notes), in.ID)
	if err != nil {
		return fmt.Errorf("update workout %d: %w", in.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("workout %d not found", in.ID)
	}
	return nil
}

func DeleteWorkout(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("workout id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete workout %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("workout %d not found", id)
	}
	return nil
}

// ListWorkouts returns every session ordered by date descending, newest first.
func ListWorkouts(db *sql.DB) ([]model.WorkoutSession, error) {
	rows, err := db.Query(`
SELECT id, date, name, duration_min, workout_type, muscles_worked, IFNULL(notes, ''), created_at, updated_at
FROM workouts
ORDER BY date DESC, id DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	sessions := make([]model.WorkoutSession, 0)
	for rows.Next() {
		var w model.WorkoutSession
		var dateRaw, musclesRaw string
		var duration sql.NullInt64
		if err := rows.Scan(&w.ID, &dateRaw, &w.Name, &duration, &w.WorkoutType, &musclesRaw, &w.Notes, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		w.Date, err = parseDate(dateRaw)
		if err != nil {
			return nil, err
		}
		if duration.Valid {
			v := int(duration.Int64)
			w.DurationMin = &v
		}
		if err := json.Unmarshal([]byte(musclesRaw), &w.MusclesWorked); err != nil {
			return nil, fmt.Errorf("decode muscles for workout %d: %w", w.ID, err)
		}
		sessions = append(sessions, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return sessions, nil
}

func validateWorkout(in *WorkoutInput, now time.Time) (date, musclesJSON string, err error) {
	if strings.TrimSpace(in.Name) == "" {
		return "", "", fmt.Errorf("workout name is required")
	}
	if in.DurationMin != nil && *in.DurationMin <= 0 {
		return "", "", fmt.Errorf("duration must be > 0 minutes")
	}
	date, err = normalizeDate(in.Date, now)
	if err != nil {
		return "", "", err
	}

	muscles := make([]string, 0, len(in.MusclesWorked))
	for _, m := range in.MusclesWorked {
		if m = strings.ToLower(strings.TrimSpace(m)); m != "" {
			muscles = append(muscles, m)
		}
	}
	encoded, err := json.Marshal(muscles)
	if err != nil {
		return "", "", fmt.Errorf("encode muscles worked: %w", err)
	}
	return date, string(encoded), nil
}

func normalizeWorkoutType(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}

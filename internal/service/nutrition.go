package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

type NutritionInput struct {
	Date        string
	MealType    string
	FoodName    string
	ServingSize float64
	ServingUnit string
	Calories    int
	ProteinG    float64
	CarbsG      float64
	FatG        float64
}

func LogNutrition(db *sql.DB, in NutritionInput, now time.Time) (int64, error) {
	meal, err := model.ParseMealType(in.MealType)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(in.FoodName) == "" {
		return 0, fmt.Errorf("food name is required")
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("protein", in.ProteinG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("carbs", in.CarbsG); err != nil {
		return 0, err
	}
	if err := validateNonNegativeFloat("fat", in.FatG); err != nil {
		return 0, err
	}
	date, err := normalizeDate(in.Date, now)
	if err != nil {
		return 0, err
	}
	if in.ServingSize <= 0 {
		in.ServingSize = 1
	}
	unit := strings.TrimSpace(in.ServingUnit)
	if unit == "" {
		unit = "serving"
	}

	res, err := db.Exec(`
INSERT INTO nutrition_entries(date, meal_type, food_name, serving_size, serving_unit, calories, protein_g, carbs_g, fat_g)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
`, date, meal, strings.TrimSpace(in.FoodName), in.ServingSize, unit, in.Calories, in.ProteinG, in.CarbsG, in.FatG)
	if err != nil {
		return 0, fmt.Errorf("log nutrition entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve nutrition entry id: %w", err)
	}
	return id, nil
}

func DeleteNutrition(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("nutrition entry id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM nutrition_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete nutrition entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("nutrition entry %d not found", id)
	}
	return nil
}

// ListNutrition returns all entries ordered by date then insertion order.
func ListNutrition(db *sql.DB) ([]model.NutritionEntry, error) {
	rows, err := db.Query(`
SELECT id, date, meal_type, food_name, serving_size, serving_unit, calories, protein_g, carbs_g, fat_g, created_at
FROM nutrition_entries
ORDER BY date ASC, id ASC
`)
	if err != nil {
		return nil, fmt.Errorf("list nutrition entries: %w", err)
	}
	defer rows.Close()

	entries := make([]model.NutritionEntry, 0)
	for rows.Next() {
		var e model.NutritionEntry
		var dateRaw string
		if err := rows.Scan(&e.ID, &dateRaw, &e.MealType, &e.FoodName, &e.ServingSize, &e.ServingUnit, &e.Calories, &e.ProteinG, &e.CarbsG, &e.FatG, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan nutrition entry: %w", err)
		}
		e.Date, err = parseDate(dateRaw)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nutrition entries: %w", err)
	}
	return entries, nil
}

package service_test

import (
	"testing"

	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
	"github.com/darrylrachel/blackheart-coach-v0/internal/service"
)

func validProfileInput() service.ProfileInput {
	return service.ProfileInput{
		Username:      "darryl",
		Gender:        "male",
		Weight:        70,
		WeightUnit:    "kg",
		HeightCm:      175,
		Age:           30,
		ActivityLevel: "moderately_active",
		FitnessGoal:   "muscle_gain",
	}
}

func TestSaveProfileComputesTargets(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	p, err := service.SaveProfile(sqldb, validProfileInput())
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("expected singleton profile id 1, got %d", p.ID)
	}
	if p.TDEE != 2556 {
		t.Fatalf("expected TDEE 2556, got %d", p.TDEE)
	}
	if p.CaloriesGoal != 3056 {
		t.Fatalf("expected calories goal 3056, got %d", p.CaloriesGoal)
	}
	if p.ProteinGoalG != 140 {
		t.Fatalf("expected protein goal 140g, got %d", p.ProteinGoalG)
	}
}

func TestSaveProfileUpsertsSingleRow(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.SaveProfile(sqldb, validProfileInput()); err != nil {
		t.Fatalf("initial save: %v", err)
	}

	in := validProfileInput()
	in.FitnessGoal = "fat_loss"
	updated, err := service.SaveProfile(sqldb, in)
	if err != nil {
		t.Fatalf("update save: %v", err)
	}
	if updated.FitnessGoal != model.GoalFatLoss {
		t.Fatalf("expected updated goal fat_loss, got %s", updated.FitnessGoal)
	}
	if updated.CaloriesGoal != 2056 {
		t.Fatalf("expected fat_loss calories goal 2056, got %d", updated.CaloriesGoal)
	}

	var count int
	if err := sqldb.QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single profile row, got %d", count)
	}
}

func TestSaveProfileConvertsPounds(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	in := validProfileInput()
	in.Weight = 154.324
	in.WeightUnit = "lbs"
	p, err := service.SaveProfile(sqldb, in)
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if p.CurrentWeightKg < 69.9 || p.CurrentWeightKg > 70.1 {
		t.Fatalf("expected ~70 kg after conversion, got %v", p.CurrentWeightKg)
	}
	if p.PreferredWeightUnit != "lb" {
		t.Fatalf("expected preferred unit lb, got %q", p.PreferredWeightUnit)
	}
}

func TestSaveProfileRejectsInvalidInput(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	cases := []struct {
		name   string
		mutate func(*service.ProfileInput)
	}{
		{"bad gender", func(in *service.ProfileInput) { in.Gender = "unknown" }},
		{"bad activity", func(in *service.ProfileInput) { in.ActivityLevel = "couch" }},
		{"bad goal", func(in *service.ProfileInput) { in.FitnessGoal = "bulk" }},
		{"zero weight", func(in *service.ProfileInput) { in.Weight = 0 }},
		{"zero height", func(in *service.ProfileInput) { in.HeightCm = 0 }},
		{"negative age", func(in *service.ProfileInput) { in.Age = -1 }},
	}
	for _, tc := range cases {
		in := validProfileInput()
		tc.mutate(&in)
		if _, err := service.SaveProfile(sqldb, in); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestGetProfileMissingReturnsNil(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	p, err := service.GetProfile(sqldb)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil profile before onboarding, got %+v", p)
	}
}

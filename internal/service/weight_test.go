package service_test

import (
	"testing"
	"time"

	"github.com/darrylrachel/blackheart-coach-v0/internal/service"
)

var serviceNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

func TestLogWeightUpsertsByDay(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := service.LogWeight(sqldb, service.LogWeightInput{Weight: 80, Date: "2026-03-10"}, serviceNow); err != nil {
		t.Fatalf("log weight: %v", err)
	}
	if err := service.LogWeight(sqldb, service.LogWeightInput{Weight: 79.5, Date: "2026-03-10"}, serviceNow); err != nil {
		t.Fatalf("re-log weight: %v", err)
	}

	history, err := service.WeightHistory(sqldb)
	if err != nil {
		t.Fatalf("weight history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected one sample after same-day re-log, got %d", len(history))
	}
	if *history[0].WeightKg != 79.5 {
		t.Fatalf("expected later value to win, got %v", *history[0].WeightKg)
	}
}

func TestLogWeightDefaultsToToday(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := service.LogWeight(sqldb, service.LogWeightInput{Weight: 82}, serviceNow); err != nil {
		t.Fatalf("log weight: %v", err)
	}
	history, err := service.WeightHistory(sqldb)
	if err != nil {
		t.Fatalf("weight history: %v", err)
	}
	if len(history) != 1 || history[0].Date.Format("2006-01-02") != "2026-03-15" {
		t.Fatalf("expected sample dated today, got %+v", history)
	}
}

func TestLogWeightSyncsProfile(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if _, err := service.SaveProfile(sqldb, validProfileInput()); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if err := service.LogWeight(sqldb, service.LogWeightInput{Weight: 72, Date: "2026-03-14"}, serviceNow); err != nil {
		t.Fatalf("log weight: %v", err)
	}

	p, err := service.GetProfile(sqldb)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.CurrentWeightKg != 72 {
		t.Fatalf("expected profile weight synced to 72, got %v", p.CurrentWeightKg)
	}

	// Backfilling an older date must not clobber the newer reading.
	if err := service.LogWeight(sqldb, service.LogWeightInput{Weight: 75, Date: "2026-03-01"}, serviceNow); err != nil {
		t.Fatalf("backfill weight: %v", err)
	}
	p, err = service.GetProfile(sqldb)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.CurrentWeightKg != 72 {
		t.Fatalf("expected profile weight to stay 72 after backfill, got %v", p.CurrentWeightKg)
	}
}

func TestLogWeightValidation(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	if err := service.LogWeight(sqldb, service.LogWeightInput{Weight: 0}, serviceNow); err == nil {
		t.Fatalf("expected error for zero weight")
	}
	if err := service.LogWeight(sqldb, service.LogWeightInput{Weight: 80, Unit: "stone"}, serviceNow); err == nil {
		t.Fatalf("expected error for unsupported unit")
	}
	if err := service.LogWeight(sqldb, service.LogWeightInput{Weight: 80, Date: "15-03-2026"}, serviceNow); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestWeightHistorySortedAscending(t *testing.T) {
	t.Parallel()
	sqldb := newTestDB(t)

	for _, d := range []string{"2026-03-12", "2026-03-01", "2026-03-08"} {
		if err := service.LogWeight(sqldb, service.LogWeightInput{Weight: 80, Date: d}, serviceNow); err != nil {
			t.Fatalf("log weight %s: %v", d, err)
		}
	}
	history, err := service.WeightHistory(sqldb)
	if err != nil {
		t.Fatalf("weight history: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(history))
	}
	if history[0].Date.After(history[1].Date) || history[1].Date.After(history[2].Date) {
		t.Fatalf("expected ascending dates, got %v", history)
	}
}

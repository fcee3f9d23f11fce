package engine_test

import (
	"testing"
	"time"

	"github.com/darrylrachel/blackheart-coach-v0/internal/engine"
	"github.com/darrylrachel/blackheart-coach-v0/internal/model"
)

var testNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.Local)

func sampleOn(daysAgo int, weight float64) model.WeightSample {
	return model.WeightSample{
		Date:     testNow.AddDate(0, 0, -daysAgo),
		WeightKg: &weight,
	}
}

func TestParseTimeRange(t *testing.T) {
	t.Parallel()

	for _, valid := range []string{"7days", "30days", "90days"} {
		if _, err := engine.ParseTimeRange(valid); err != nil {
			t.Fatalf("expected %q to parse, got %v", valid, err)
		}
	}
	if _, err := engine.ParseTimeRange("14days"); err == nil {
		t.Fatalf("expected error for unsupported range")
	}
}

func TestWindowBoundariesInclusive(t *testing.T) {
	t.Parallel()

	window := engine.WindowForRange(engine.TimeRange7Days, testNow)

	inside := sampleOn(7, 80)
	outside := sampleOn(8, 80)
	today := sampleOn(0, 80)

	if !window.Contains(inside.Date) {
		t.Fatalf("expected record dated exactly 7 days ago to be inside the window")
	}
	if window.Contains(outside.Date) {
		t.Fatalf("expected record dated 8 days ago to be outside the window")
	}
	if !window.Contains(today.Date) {
		t.Fatalf("expected today's record to be inside the window")
	}
}

func TestFilterByWindowPreservesOrder(t *testing.T) {
	t.Parallel()

	records := []model.WeightSample{
		sampleOn(2, 81),
		sampleOn(10, 83),
		sampleOn(0, 80),
		sampleOn(5, 82),
	}
	window := engine.WindowForRange(engine.TimeRange7Days, testNow)
	got := engine.FilterByWindow(records, window, func(s model.WeightSample) time.Time { return s.Date })

	if len(got) != 3 {
		t.Fatalf("expected 3 records in window, got %d", len(got))
	}
	if *got[0].WeightKg != 81 || *got[1].WeightKg != 80 || *got[2].WeightKg != 82 {
		t.Fatalf("expected input order preserved, got %v %v %v", *got[0].WeightKg, *got[1].WeightKg, *got[2].WeightKg)
	}
}

func TestFilterByWindowEmptyInput(t *testing.T) {
	t.Parallel()

	window := engine.WindowForRange(engine.TimeRange30Days, testNow)
	got := engine.FilterByWindow(nil, window, func(s model.WeightSample) time.Time { return s.Date })
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %v", got)
	}
}

func TestWindowIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	window := engine.WindowForRange(engine.TimeRange7Days, testNow)
	lateOnBoundary := time.Date(2026, 3, 8, 23, 59, 0, 0, time.Local)
	if !window.Contains(lateOnBoundary) {
		t.Fatalf("expected late-evening record on the boundary day to be included")
	}
}

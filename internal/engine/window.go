package engine

import (
	"fmt"
	"math"
	"time"
)

type TimeRange string

const (
	TimeRange7Days  TimeRange = "7days"
	TimeRange30Days TimeRange = "30days"
	TimeRange90Days TimeRange = "90days"
)

func ParseTimeRange(s string) (TimeRange, error) {
	switch r := TimeRange(s); r {
	case TimeRange7Days, TimeRange30Days, TimeRange90Days:
		return r, nil
	default:
		return "", fmt.Errorf("invalid time range %q (use 7days, 30days, 90days)", s)
	}
}

func (r TimeRange) Days() int {
	switch r {
	case TimeRange7Days:
		return 7
	case TimeRange90Days:
		return 90
	default:
		return 30
	}
}

// DateWindow is an inclusive [From, To] interval compared at calendar-day
// granularity. Both endpoints are day-truncated.
type DateWindow struct {
	From time.Time
	To   time.Time
}

// WindowForRange builds the window [now - days, now], inclusive on both ends.
func WindowForRange(r TimeRange, now time.Time) DateWindow {
	to := beginningOfDay(now)
	return DateWindow{
		From: to.AddDate(0, 0, -r.Days()),
		To:   to,
	}
}

func (w DateWindow) Contains(t time.Time) bool {
	d := beginningOfDay(t)
	return !d.Before(w.From) && !d.After(w.To)
}

// FilterByWindow returns the records whose date falls inside the window,
// preserving input order. Empty input yields an empty (non-nil) slice.
func FilterByWindow[T any](records []T, w DateWindow, dateOf func(T) time.Time) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if w.Contains(dateOf(rec)) {
			out = append(out, rec)
		}
	}
	return out
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// daysBetween counts whole calendar days from b to a, robust to DST hops.
func daysBetween(a, b time.Time) int {
	return int(math.Round(beginningOfDay(a).Sub(beginningOfDay(b)).Hours() / 24))
}

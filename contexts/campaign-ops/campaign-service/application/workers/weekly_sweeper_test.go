package workers

import (
	"testing"
	"time"
)

func TestNextMondayFromMidWeek(t *testing.T) {
	// Thursday 2023-06-15.
	now := time.Date(2023, time.June, 15, 10, 0, 0, 0, time.UTC)
	next := NextMonday(now, 8)
	want := time.Date(2023, time.June, 19, 8, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("next monday = %v, want %v", next, want)
	}
}

func TestNextMondayOnMondayAfterHour(t *testing.T) {
	// Monday 2023-06-12 past the sweep hour rolls a full week.
	now := time.Date(2023, time.June, 12, 9, 30, 0, 0, time.UTC)
	next := NextMonday(now, 8)
	want := time.Date(2023, time.June, 19, 8, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("next monday = %v, want %v", next, want)
	}
}

func TestNextMondayOnMondayBeforeHour(t *testing.T) {
	now := time.Date(2023, time.June, 12, 6, 0, 0, 0, time.UTC)
	next := NextMonday(now, 8)
	want := time.Date(2023, time.June, 12, 8, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Fatalf("next monday = %v, want %v", next, want)
	}
}

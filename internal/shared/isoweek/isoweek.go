// Package isoweek computes ISO-8601 week numbers for the weekly
// metrics ledger. Weeks start on Monday; week 1 is the week containing
// the year's first Thursday.
package isoweek

import "time"

// Current returns the ISO week-of-year for t.
func Current(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// Previous returns the ISO week before the one containing t.
// During week 1 it returns the week of December 31 of the prior
// calendar year. Usually that is 52 or 53, but when that December 31
// itself belongs to week 1 of the new ISO year (as for 2026), Previous
// returns 1.
func Previous(t time.Time) int {
	week := Current(t)
	if week > 1 {
		return week - 1
	}
	lastDay := time.Date(t.Year()-1, time.December, 31, 23, 59, 0, 0, t.Location())
	return Current(lastDay)
}

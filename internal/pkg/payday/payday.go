// Package payday computes the number of whole days remaining until a
// worker's next configured payday.
package payday

import "time"

// DaysUntil returns the whole days from today until the next occurrence of
// payDay (a day of month, 1-31). When the configured day exceeds the length
// of the target month, it resolves to that month's last day instead of
// spilling into the following month. A nil payDay means no payday is
// configured and yields 0.
func DaysUntil(today time.Time, payDay *int) int {
	if payDay == nil {
		return 0
	}

	day := *payDay
	if day < 1 {
		return 0
	}

	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	target := clampedDate(today.Year(), today.Month(), day)
	if target.Before(today) {
		next := today.AddDate(0, 0, -today.Day()+1).AddDate(0, 1, 0)
		target = clampedDate(next.Year(), next.Month(), day)
	}

	return int(target.Sub(today).Hours() / 24)
}

// clampedDate builds year/month/day with day clamped to the month's length.
func clampedDate(year int, month time.Month, day int) time.Time {
	last := daysIn(year, month)
	if day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

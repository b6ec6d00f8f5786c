package timeutil

import (
	"errors"
	"fmt"
)

// MinutesPerDay is the length of one wall-clock day.
const MinutesPerDay = 24 * 60

// ErrInvalidClock is returned for strings that are not a valid "HH:mm" time.
var ErrInvalidClock = errors.New("invalid clock time")

// ParseClock parses an "HH:mm" string into minutes since midnight (0-1439).
// The separator must be a colon, both fields must be two decimal digits, the
// hour must be 0-23 and the minute 0-59.
func ParseClock(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	hour, ok := twoDigits(clock[0], clock[1])
	if !ok || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	minute, ok := twoDigits(clock[3], clock[4])
	if !ok || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	return hour*60 + minute, nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

// HourDiff is the elapsed time between two clock times after break deduction.
// Decimal is the remaining minutes divided by 60 and is only an intermediate
// for display; currency math must not start from it.
type HourDiff struct {
	Hours        int
	Minutes      int
	TotalMinutes int
	Decimal      float64
}

// Diff computes the elapsed time from one clock string to another, wrapping
// past midnight when the end is at or before the start, then subtracts
// breakMinutes. The result is floored at zero; a break longer than the shift
// yields zero elapsed time, never a negative duration.
func Diff(from, to string, breakMinutes int) (HourDiff, error) {
	start, err := ParseClock(from)
	if err != nil {
		return HourDiff{}, err
	}
	end, err := ParseClock(to)
	if err != nil {
		return HourDiff{}, err
	}

	elapsed := end - start
	if end <= start {
		elapsed = (MinutesPerDay - start) + end
	}

	elapsed -= breakMinutes
	if elapsed < 0 {
		elapsed = 0
	}

	return HourDiff{
		Hours:        elapsed / 60,
		Minutes:      elapsed % 60,
		TotalMinutes: elapsed,
		Decimal:      float64(elapsed) / 60.0,
	}, nil
}

// FormatMinutes formats a minute count as "Xh Ym".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Package worktime partitions a shift interval into day and night minutes
// against a fixed night window.
package worktime

import (
	"errors"
	"fmt"

	"github.com/geekganization/MOUP-sub000/internal/pkg/timeutil"
)

// ErrMinuteOutOfRange signals a contract violation: minute-of-day arguments
// must be in [0, 1440).
var ErrMinuteOutOfRange = errors.New("minute of day out of range")

// Window is a night window over minutes of day, start inclusive and end
// exclusive. A window with Start > End wraps across midnight. It is a
// business constant injected from configuration, not user input.
type Window struct {
	Start int
	End   int
}

// Contains reports whether a minute of day falls inside the window.
func (w Window) Contains(minute int) bool {
	if w.Start <= w.End {
		return minute >= w.Start && minute < w.End
	}
	return minute >= w.Start || minute < w.End
}

// Split is the day/night partition of one shift. DayMinutes plus
// NightMinutes always equals the shift's total elapsed minutes.
type Split struct {
	DayMinutes   int
	NightMinutes int
}

// TotalMinutes returns the elapsed minutes between two minute-of-day values,
// wrapping at midnight when end is at or before start.
func TotalMinutes(start, end int) int {
	if end <= start {
		return (timeutil.MinutesPerDay - start) + end
	}
	return end - start
}

// SplitShift partitions the shift [start, end) into day and night minutes.
// The shift is unwrapped onto a two-day axis and intersected with the night
// window's occurrences on that axis, so a shift spanning both window
// boundaries (e.g. 18:00 -> 08:00) attributes its two disjoint night
// segments correctly.
func SplitShift(start, end int, w Window) (Split, error) {
	if start < 0 || start >= timeutil.MinutesPerDay || end < 0 || end >= timeutil.MinutesPerDay {
		return Split{}, fmt.Errorf("%w: start=%d end=%d", ErrMinuteOutOfRange, start, end)
	}

	total := TotalMinutes(start, end)
	shiftEnd := start + total

	night := 0
	for _, iv := range w.unwrapped() {
		night += overlap(start, shiftEnd, iv.from, iv.to)
	}

	return Split{DayMinutes: total - night, NightMinutes: night}, nil
}

type interval struct {
	from, to int
}

// unwrapped returns the window's occurrences on the [0, 2880) axis.
func (w Window) unwrapped() []interval {
	const day = timeutil.MinutesPerDay
	if w.Start <= w.End {
		return []interval{
			{w.Start, w.End},
			{w.Start + day, w.End + day},
		}
	}
	return []interval{
		{0, w.End},
		{w.Start, w.End + day},
		{w.Start + day, 2 * day},
	}
}

func overlap(aFrom, aTo, bFrom, bTo int) int {
	from := max(aFrom, bFrom)
	to := min(aTo, bTo)
	if to <= from {
		return 0
	}
	return to - from
}

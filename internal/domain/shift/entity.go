package shift

import "time"

// Event is one recorded shift: a date, start/end clock times as "HH:mm"
// strings, and the unpaid break in minutes. An end time at or before the
// start time means the shift crosses midnight.
type Event struct {
	ID           string
	WorkerID     string
	WorkplaceID  string
	EventDate    time.Time
	StartTime    string
	EndTime      string
	BreakMinutes int
	Memo         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonthlySummary is the ordered list of one worker's shift events at one
// workplace for a calendar month. It is materialized from the store and
// consumed read-only by the aggregation engine.
type MonthlySummary struct {
	WorkerID    string
	WorkplaceID string
	Year        int
	Month       int
	Events      []Event
}

package shift

import (
	"context"
	"time"
)

// Repository is the persistence boundary for shift events.
type Repository interface {
	Create(ctx context.Context, event Event) (Event, error)
	Update(ctx context.Context, event Event) (Event, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Event, error)

	// GetMonthlySummary returns the worker's shift events at a workplace for
	// a calendar month, ordered by date then start time. A month with no
	// events yields an empty summary, not an error.
	GetMonthlySummary(ctx context.Context, workerID, workplaceID string, year, month int) (MonthlySummary, error)

	// ListByWorkerAndRange returns a worker's events across all workplaces
	// in [from, to), ordered by date, for calendar display.
	ListByWorkerAndRange(ctx context.Context, workerID string, from, to time.Time) ([]Event, error)
}

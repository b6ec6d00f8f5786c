package shift

import "context"

// Service exposes the shift calendar flows: recording, editing and listing
// the raw shift events the computation engine consumes.
type Service interface {
	Create(ctx context.Context, workerID string, req CreateShiftRequest) (ShiftResponse, error)
	Update(ctx context.Context, workerID string, req UpdateShiftRequest) (ShiftResponse, error)
	Delete(ctx context.Context, workerID, id string) error

	// ListMonth returns the worker's shifts across all workplaces for a
	// calendar month, for the shift calendar screen.
	ListMonth(ctx context.Context, workerID string, year, month int) ([]ShiftResponse, error)
}

package wage

import "context"

// Repository is the persistence boundary for wage profiles.
type Repository interface {
	Create(ctx context.Context, profile Profile) (Profile, error)
	Update(ctx context.Context, profile Profile) (Profile, error)

	// GetByWorkerAndWorkplace returns ErrProfileNotFound when the membership
	// has no wage profile registered.
	GetByWorkerAndWorkplace(ctx context.Context, workerID, workplaceID string) (Profile, error)
}

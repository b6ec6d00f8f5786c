package workplace

import "context"

// Repository is the persistence boundary for workplaces and memberships.
type Repository interface {
	Create(ctx context.Context, wp Workplace) (Workplace, error)
	GetByID(ctx context.Context, id string) (Workplace, error)

	// ListForOwner returns every workplace the user operates.
	ListForOwner(ctx context.Context, ownerID string) ([]Workplace, error)

	// ListForWorker returns every workplace the user belongs to as a worker.
	ListForWorker(ctx context.Context, workerID string) ([]Workplace, error)

	// ListMembers returns the workplace's workers with their wage profiles
	// joined in; members without a profile carry a nil Profile.
	ListMembers(ctx context.Context, workplaceID string) ([]Member, error)

	AddMember(ctx context.Context, workplaceID, workerID string) error
	IsMember(ctx context.Context, workplaceID, workerID string) (bool, error)
}

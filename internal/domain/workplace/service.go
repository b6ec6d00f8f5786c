package workplace

import "context"

// Service exposes workplace management: creation by owners, joining by
// workers, and member listing.
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateWorkplaceRequest) (WorkplaceResponse, error)
	Join(ctx context.Context, workerID string, req JoinWorkplaceRequest) error
	ListMine(ctx context.Context, userID string, asOwner bool) ([]WorkplaceResponse, error)
	ListMembers(ctx context.Context, ownerID, workplaceID string) ([]MemberResponse, error)
}

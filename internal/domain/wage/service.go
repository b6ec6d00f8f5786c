package wage

import "context"

// Service exposes the wage profile register/edit flows. The computation
// engine never mutates profiles; these flows are the only writers.
type Service interface {
	Register(ctx context.Context, workerID string, req RegisterProfileRequest) (ProfileResponse, error)
	Update(ctx context.Context, workerID string, req UpdateProfileRequest) (ProfileResponse, error)
	Get(ctx context.Context, workerID, workplaceID string) (ProfileResponse, error)
}

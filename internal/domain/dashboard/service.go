package dashboard

import "context"

// Service produces the owner-facing dashboard for a calendar month.
type Service interface {
	// GetDashboard aggregates every workplace the owner operates for the
	// given month, compared against the previous month. Zero workplaces
	// yield a single placeholder row, never an error.
	GetDashboard(ctx context.Context, ownerID string, year, month int) (*OwnerDashboardResponse, error)
}

package worker_dashboard

import "context"

// Service produces the worker-facing dashboard for a calendar month.
type Service interface {
	// GetDashboard aggregates the worker's own records per workplace for the
	// given month, compared against the previous month. Zero memberships
	// yield a single placeholder row, never an error.
	GetDashboard(ctx context.Context, workerID string, year, month int) (*WorkerDashboardResponse, error)
}

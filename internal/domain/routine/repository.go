package routine

import (
	"context"
	"time"
)

// Repository counts a user's routines for the dashboard header. Routines
// themselves are managed elsewhere; the dashboards only surface the count.
type Repository interface {
	CountForDate(ctx context.Context, userID string, date time.Time) (int, error)
}

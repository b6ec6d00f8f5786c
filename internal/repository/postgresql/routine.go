package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/routine"
	"github.com/geekganization/MOUP-sub000/internal/pkg/database"
)

type routineRepository struct {
	db *database.DB
}

func NewRoutineRepository(db *database.DB) routine.Repository {
	return &routineRepository{db: db}
}

// CountForDate implements routine.Repository. A routine counts for a date
// when its weekday bitmask includes the date's weekday.
func (r *routineRepository) CountForDate(ctx context.Context, userID string, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	// Weekday bit 0 is Sunday, matching time.Weekday numbering.
	weekdayBit := 1 << int(date.Weekday())

	query := `
		SELECT COUNT(*)
		FROM routines
		WHERE user_id = $1
		  AND (weekday_mask & $2) <> 0
	`

	var count int
	if err := q.QueryRow(ctx, query, userID, weekdayBit).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count routines: %w", err)
	}

	return count, nil
}

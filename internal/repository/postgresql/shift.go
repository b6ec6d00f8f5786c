package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepository{db: db}
}

// Create implements shift.Repository.
func (r *shiftRepository) Create(ctx context.Context, ev shift.Event) (shift.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_events (
			id, worker_id, workplace_id, event_date, start_time, end_time, break_minutes, memo
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ev.ID, ev.WorkerID, ev.WorkplaceID, ev.EventDate,
		ev.StartTime, ev.EndTime, ev.BreakMinutes, ev.Memo,
	).Scan(&ev.CreatedAt, &ev.UpdatedAt)
	if err != nil {
		return shift.Event{}, fmt.Errorf("failed to create shift event: %w", err)
	}

	return ev, nil
}

// Update implements shift.Repository.
func (r *shiftRepository) Update(ctx context.Context, ev shift.Event) (shift.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_events
		SET event_date = $1, start_time = $2, end_time = $3,
			break_minutes = $4, memo = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		ev.EventDate, ev.StartTime, ev.EndTime, ev.BreakMinutes, ev.Memo, ev.ID,
	).Scan(&ev.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Event{}, shift.ErrShiftNotFound
		}
		return shift.Event{}, fmt.Errorf("failed to update shift event: %w", err)
	}

	return ev, nil
}

// Delete implements shift.Repository.
func (r *shiftRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

// GetByID implements shift.Repository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, workplace_id, event_date, start_time, end_time,
			   break_minutes, memo, created_at, updated_at
		FROM shift_events
		WHERE id = $1
	`

	var ev shift.Event
	err := q.QueryRow(ctx, query, id).Scan(
		&ev.ID, &ev.WorkerID, &ev.WorkplaceID, &ev.EventDate, &ev.StartTime, &ev.EndTime,
		&ev.BreakMinutes, &ev.Memo, &ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Event{}, shift.ErrShiftNotFound
		}
		return shift.Event{}, fmt.Errorf("failed to get shift event: %w", err)
	}

	return ev, nil
}

// GetMonthlySummary implements shift.Repository. Events are ordered by date
// and start time so aggregation output is stable across calls.
func (r *shiftRepository) GetMonthlySummary(ctx context.Context, workerID, workplaceID string, year, month int) (shift.MonthlySummary, error) {
	q := GetQuerier(ctx, r.db)

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT id, worker_id, workplace_id, event_date, start_time, end_time,
			   break_minutes, memo, created_at, updated_at
		FROM shift_events
		WHERE worker_id = $1 AND workplace_id = $2
		  AND event_date >= $3 AND event_date < $4
		ORDER BY event_date, start_time
	`

	rows, err := q.Query(ctx, query, workerID, workplaceID, from, to)
	if err != nil {
		return shift.MonthlySummary{}, fmt.Errorf("failed to get monthly summary: %w", err)
	}
	defer rows.Close()

	events, err := scanShiftEvents(rows)
	if err != nil {
		return shift.MonthlySummary{}, err
	}

	return shift.MonthlySummary{
		WorkerID:    workerID,
		WorkplaceID: workplaceID,
		Year:        year,
		Month:       month,
		Events:      events,
	}, nil
}

// ListByWorkerAndRange implements shift.Repository.
func (r *shiftRepository) ListByWorkerAndRange(ctx context.Context, workerID string, from, to time.Time) ([]shift.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, workplace_id, event_date, start_time, end_time,
			   break_minutes, memo, created_at, updated_at
		FROM shift_events
		WHERE worker_id = $1
		  AND event_date >= $2 AND event_date < $3
		ORDER BY event_date, start_time
	`

	rows, err := q.Query(ctx, query, workerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift events: %w", err)
	}
	defer rows.Close()

	return scanShiftEvents(rows)
}

func scanShiftEvents(rows pgx.Rows) ([]shift.Event, error) {
	var events []shift.Event
	for rows.Next() {
		var ev shift.Event
		err := rows.Scan(
			&ev.ID, &ev.WorkerID, &ev.WorkplaceID, &ev.EventDate, &ev.StartTime, &ev.EndTime,
			&ev.BreakMinutes, &ev.Memo, &ev.CreatedAt, &ev.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift events: %w", err)
	}
	return events, nil
}

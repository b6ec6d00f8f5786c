package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/geekganization/MOUP-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type workplaceRepository struct {
	db *database.DB
}

func NewWorkplaceRepository(db *database.DB) workplace.Repository {
	return &workplaceRepository{db: db}
}

// Create implements workplace.Repository.
func (r *workplaceRepository) Create(ctx context.Context, wp workplace.Workplace) (workplace.Workplace, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workplaces (id, owner_id, name, address)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, wp.ID, wp.OwnerID, wp.Name, wp.Address).
		Scan(&wp.CreatedAt, &wp.UpdatedAt)
	if err != nil {
		return workplace.Workplace{}, fmt.Errorf("failed to create workplace: %w", err)
	}

	return wp, nil
}

// GetByID implements workplace.Repository.
func (r *workplaceRepository) GetByID(ctx context.Context, id string) (workplace.Workplace, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, address, created_at, updated_at
		FROM workplaces
		WHERE id = $1
	`

	var wp workplace.Workplace
	err := q.QueryRow(ctx, query, id).Scan(
		&wp.ID, &wp.OwnerID, &wp.Name, &wp.Address, &wp.CreatedAt, &wp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workplace.Workplace{}, workplace.ErrWorkplaceNotFound
		}
		return workplace.Workplace{}, fmt.Errorf("failed to get workplace: %w", err)
	}

	return wp, nil
}

// ListForOwner implements workplace.Repository.
func (r *workplaceRepository) ListForOwner(ctx context.Context, ownerID string) ([]workplace.Workplace, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, address, created_at, updated_at
		FROM workplaces
		WHERE owner_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workplaces for owner: %w", err)
	}
	defer rows.Close()

	return scanWorkplaces(rows)
}

// ListForWorker implements workplace.Repository.
func (r *workplaceRepository) ListForWorker(ctx context.Context, workerID string) ([]workplace.Workplace, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT w.id, w.owner_id, w.name, w.address, w.created_at, w.updated_at
		FROM workplaces w
		JOIN workplace_members m ON m.workplace_id = w.id
		WHERE m.worker_id = $1
		ORDER BY m.joined_at
	`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workplaces for worker: %w", err)
	}
	defer rows.Close()

	return scanWorkplaces(rows)
}

// ListMembers implements workplace.Repository. Wage profiles are joined in;
// members without one carry a nil Profile.
func (r *workplaceRepository) ListMembers(ctx context.Context, workplaceID string) ([]workplace.Member, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.worker_id, u.nickname, m.joined_at,
			   p.id, p.wage_type, p.wage_amount, p.night_allowance_enabled, p.pay_day,
			   p.employment_insurance, p.health_insurance, p.industrial_accident, p.national_pension,
			   p.created_at, p.updated_at
		FROM workplace_members m
		JOIN users u ON u.id = m.worker_id
		LEFT JOIN wage_profiles p ON p.worker_id = m.worker_id AND p.workplace_id = m.workplace_id
		WHERE m.workplace_id = $1
		ORDER BY m.joined_at
	`

	rows, err := q.Query(ctx, query, workplaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workplace members: %w", err)
	}
	defer rows.Close()

	var members []workplace.Member
	for rows.Next() {
		var (
			m workplace.Member
			p wage.Profile

			profileID  *string
			wageType   *string
			wageAmount decimal.NullDecimal
			nightAllow *bool
			employment *bool
			health     *bool
			accident   *bool
			pension    *bool
			createdAt  *time.Time
			updatedAt  *time.Time
		)
		err := rows.Scan(
			&m.WorkerID, &m.Nickname, &m.JoinedAt,
			&profileID, &wageType, &wageAmount, &nightAllow, &p.PayDay,
			&employment, &health, &accident, &pension,
			&createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workplace member: %w", err)
		}

		if profileID != nil {
			p.ID = *profileID
			p.WorkerID = m.WorkerID
			p.WorkplaceID = workplaceID
			p.WageType = wage.WageType(*wageType)
			p.WageAmount = wageAmount.Decimal
			p.NightAllowanceEnabled = *nightAllow
			p.CreatedAt = *createdAt
			p.UpdatedAt = *updatedAt
			p.Insurance = wage.InsuranceEnrollment{
				EmploymentInsurance: *employment,
				HealthInsurance:     *health,
				IndustrialAccident:  *accident,
				NationalPension:     *pension,
			}
			m.Profile = &p
		}

		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workplace members: %w", err)
	}

	return members, nil
}

// AddMember implements workplace.Repository.
func (r *workplaceRepository) AddMember(ctx context.Context, workplaceID, workerID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workplace_members (workplace_id, worker_id)
		VALUES ($1, $2)
		ON CONFLICT (workplace_id, worker_id) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, workplaceID, workerID)
	if err != nil {
		return fmt.Errorf("failed to add workplace member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workplace.ErrAlreadyMember
	}

	return nil
}

// IsMember implements workplace.Repository.
func (r *workplaceRepository) IsMember(ctx context.Context, workplaceID, workerID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM workplace_members
			WHERE workplace_id = $1 AND worker_id = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, workplaceID, workerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check workplace membership: %w", err)
	}

	return exists, nil
}

func scanWorkplaces(rows pgx.Rows) ([]workplace.Workplace, error) {
	var workplaces []workplace.Workplace
	for rows.Next() {
		var wp workplace.Workplace
		err := rows.Scan(&wp.ID, &wp.OwnerID, &wp.Name, &wp.Address, &wp.CreatedAt, &wp.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workplace: %w", err)
		}
		workplaces = append(workplaces, wp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workplaces: %w", err)
	}
	return workplaces, nil
}

package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/geekganization/MOUP-sub000/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type wageProfileRepository struct {
	db *database.DB
}

func NewWageProfileRepository(db *database.DB) wage.Repository {
	return &wageProfileRepository{db: db}
}

// Create implements wage.Repository.
func (r *wageProfileRepository) Create(ctx context.Context, profile wage.Profile) (wage.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO wage_profiles (
			id, worker_id, workplace_id, wage_type, wage_amount,
			night_allowance_enabled, pay_day,
			employment_insurance, health_insurance, industrial_accident, national_pension
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		profile.ID,
		profile.WorkerID,
		profile.WorkplaceID,
		string(profile.WageType),
		profile.WageAmount,
		profile.NightAllowanceEnabled,
		profile.PayDay,
		profile.Insurance.EmploymentInsurance,
		profile.Insurance.HealthInsurance,
		profile.Insurance.IndustrialAccident,
		profile.Insurance.NationalPension,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return wage.Profile{}, fmt.Errorf("failed to create wage profile: %w", err)
	}

	return profile, nil
}

// Update implements wage.Repository.
func (r *wageProfileRepository) Update(ctx context.Context, profile wage.Profile) (wage.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE wage_profiles
		SET wage_type = $1, wage_amount = $2, night_allowance_enabled = $3, pay_day = $4,
			employment_insurance = $5, health_insurance = $6,
			industrial_accident = $7, national_pension = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		string(profile.WageType),
		profile.WageAmount,
		profile.NightAllowanceEnabled,
		profile.PayDay,
		profile.Insurance.EmploymentInsurance,
		profile.Insurance.HealthInsurance,
		profile.Insurance.IndustrialAccident,
		profile.Insurance.NationalPension,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return wage.Profile{}, wage.ErrProfileNotFound
		}
		return wage.Profile{}, fmt.Errorf("failed to update wage profile: %w", err)
	}

	return profile, nil
}

// GetByWorkerAndWorkplace implements wage.Repository.
func (r *wageProfileRepository) GetByWorkerAndWorkplace(ctx context.Context, workerID, workplaceID string) (wage.Profile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, workplace_id, wage_type, wage_amount,
			   night_allowance_enabled, pay_day,
			   employment_insurance, health_insurance, industrial_accident, national_pension,
			   created_at, updated_at
		FROM wage_profiles
		WHERE worker_id = $1 AND workplace_id = $2
	`

	var (
		p        wage.Profile
		wageType string
	)
	err := q.QueryRow(ctx, query, workerID, workplaceID).Scan(
		&p.ID, &p.WorkerID, &p.WorkplaceID, &wageType, &p.WageAmount,
		&p.NightAllowanceEnabled, &p.PayDay,
		&p.Insurance.EmploymentInsurance, &p.Insurance.HealthInsurance,
		&p.Insurance.IndustrialAccident, &p.Insurance.NationalPension,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return wage.Profile{}, wage.ErrProfileNotFound
		}
		return wage.Profile{}, fmt.Errorf("failed to get wage profile: %w", err)
	}
	p.WageType = wage.WageType(wageType)

	return p, nil
}

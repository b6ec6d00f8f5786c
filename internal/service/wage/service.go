package wage

import (
	"context"
	"errors"

	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/geekganization/MOUP-sub000/internal/pkg/database"
	"github.com/geekganization/MOUP-sub000/internal/repository/postgresql"
	"github.com/google/uuid"
)

type WageServiceImpl struct {
	wageRepo      wage.Repository
	workplaceRepo workplace.Repository
	runTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewWageService(db *database.DB, wageRepo wage.Repository, workplaceRepo workplace.Repository) wage.Service {
	return &WageServiceImpl{
		wageRepo:      wageRepo,
		workplaceRepo: workplaceRepo,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *WageServiceImpl) Register(ctx context.Context, workerID string, req wage.RegisterProfileRequest) (wage.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.ProfileResponse{}, err
	}

	// The duplicate check and the insert run in one transaction so two
	// concurrent registrations cannot both pass the check.
	var created wage.Profile
	err := s.runTx(ctx, func(ctx context.Context) error {
		isMember, err := s.workplaceRepo.IsMember(ctx, req.WorkplaceID, workerID)
		if err != nil {
			return err
		}
		if !isMember {
			return workplace.ErrNotMember
		}

		_, err = s.wageRepo.GetByWorkerAndWorkplace(ctx, workerID, req.WorkplaceID)
		if err == nil {
			return wage.ErrProfileAlreadyExists
		}
		if !errors.Is(err, wage.ErrProfileNotFound) {
			return err
		}

		profile := wage.Profile{
			ID:                    uuid.NewString(),
			WorkerID:              workerID,
			WorkplaceID:           req.WorkplaceID,
			WageType:              wage.WageType(req.WageType),
			WageAmount:            req.WageAmount,
			NightAllowanceEnabled: req.NightAllowanceEnabled,
			PayDay:                req.PayDay,
			Insurance: wage.InsuranceEnrollment{
				EmploymentInsurance: req.EmploymentInsurance,
				HealthInsurance:     req.HealthInsurance,
				IndustrialAccident:  req.IndustrialAccident,
				NationalPension:     req.NationalPension,
			},
		}

		created, err = s.wageRepo.Create(ctx, profile)
		return err
	})
	if err != nil {
		return wage.ProfileResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *WageServiceImpl) Update(ctx context.Context, workerID string, req wage.UpdateProfileRequest) (wage.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.ProfileResponse{}, err
	}

	// Read-modify-write: the fetch and the write share a transaction so a
	// concurrent update cannot be silently overwritten.
	var updated wage.Profile
	err := s.runTx(ctx, func(ctx context.Context) error {
		profile, err := s.wageRepo.GetByWorkerAndWorkplace(ctx, workerID, req.WorkplaceID)
		if err != nil {
			return err
		}

		if req.WageType != nil {
			profile.WageType = wage.WageType(*req.WageType)
		}
		if req.WageAmount != nil {
			profile.WageAmount = *req.WageAmount
		}
		if req.NightAllowanceEnabled != nil {
			profile.NightAllowanceEnabled = *req.NightAllowanceEnabled
		}
		if req.PayDay != nil {
			profile.PayDay = req.PayDay
		}
		if req.EmploymentInsurance != nil {
			profile.Insurance.EmploymentInsurance = *req.EmploymentInsurance
		}
		if req.HealthInsurance != nil {
			profile.Insurance.HealthInsurance = *req.HealthInsurance
		}
		if req.IndustrialAccident != nil {
			profile.Insurance.IndustrialAccident = *req.IndustrialAccident
		}
		if req.NationalPension != nil {
			profile.Insurance.NationalPension = *req.NationalPension
		}

		updated, err = s.wageRepo.Update(ctx, profile)
		return err
	})
	if err != nil {
		return wage.ProfileResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *WageServiceImpl) Get(ctx context.Context, workerID, workplaceID string) (wage.ProfileResponse, error) {
	profile, err := s.wageRepo.GetByWorkerAndWorkplace(ctx, workerID, workplaceID)
	if err != nil {
		return wage.ProfileResponse{}, err
	}
	return mapToResponse(profile), nil
}

func mapToResponse(p wage.Profile) wage.ProfileResponse {
	return wage.ProfileResponse{
		ID:                    p.ID,
		WorkerID:              p.WorkerID,
		WorkplaceID:           p.WorkplaceID,
		WageType:              string(p.WageType),
		WageAmount:            p.WageAmount,
		NightAllowanceEnabled: p.NightAllowanceEnabled,
		PayDay:                p.PayDay,
		EmploymentInsurance:   p.Insurance.EmploymentInsurance,
		HealthInsurance:       p.Insurance.HealthInsurance,
		IndustrialAccident:    p.Insurance.IndustrialAccident,
		NationalPension:       p.Insurance.NationalPension,
	}
}

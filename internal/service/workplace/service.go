package workplace

import (
	"context"
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/geekganization/MOUP-sub000/internal/pkg/database"
	"github.com/geekganization/MOUP-sub000/internal/repository/postgresql"
	"github.com/google/uuid"
)

type WorkplaceServiceImpl struct {
	workplaceRepo workplace.Repository
	runTx         func(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewWorkplaceService(db *database.DB, workplaceRepo workplace.Repository) workplace.Service {
	return &WorkplaceServiceImpl{
		workplaceRepo: workplaceRepo,
		runTx: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

func (s *WorkplaceServiceImpl) Create(ctx context.Context, ownerID string, req workplace.CreateWorkplaceRequest) (workplace.WorkplaceResponse, error) {
	if err := req.Validate(); err != nil {
		return workplace.WorkplaceResponse{}, err
	}

	wp := workplace.Workplace{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Name:    req.Name,
		Address: req.Address,
	}

	created, err := s.workplaceRepo.Create(ctx, wp)
	if err != nil {
		return workplace.WorkplaceResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *WorkplaceServiceImpl) Join(ctx context.Context, workerID string, req workplace.JoinWorkplaceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	// The membership check and the insert run in one transaction so two
	// concurrent joins cannot both pass the check.
	return s.runTx(ctx, func(ctx context.Context) error {
		if _, err := s.workplaceRepo.GetByID(ctx, req.WorkplaceID); err != nil {
			return err
		}

		isMember, err := s.workplaceRepo.IsMember(ctx, req.WorkplaceID, workerID)
		if err != nil {
			return err
		}
		if isMember {
			return workplace.ErrAlreadyMember
		}

		return s.workplaceRepo.AddMember(ctx, req.WorkplaceID, workerID)
	})
}

func (s *WorkplaceServiceImpl) ListMine(ctx context.Context, userID string, asOwner bool) ([]workplace.WorkplaceResponse, error) {
	var (
		workplaces []workplace.Workplace
		err        error
	)
	if asOwner {
		workplaces, err = s.workplaceRepo.ListForOwner(ctx, userID)
	} else {
		workplaces, err = s.workplaceRepo.ListForWorker(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	result := make([]workplace.WorkplaceResponse, 0, len(workplaces))
	for _, wp := range workplaces {
		result = append(result, mapToResponse(wp))
	}
	return result, nil
}

func (s *WorkplaceServiceImpl) ListMembers(ctx context.Context, ownerID, workplaceID string) ([]workplace.MemberResponse, error) {
	wp, err := s.workplaceRepo.GetByID(ctx, workplaceID)
	if err != nil {
		return nil, err
	}
	if wp.OwnerID != ownerID {
		return nil, workplace.ErrNotWorkplaceOwner
	}

	members, err := s.workplaceRepo.ListMembers(ctx, workplaceID)
	if err != nil {
		return nil, err
	}

	result := make([]workplace.MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, workplace.MemberResponse{
			WorkerID:   m.WorkerID,
			Nickname:   m.Nickname,
			JoinedAt:   m.JoinedAt.Format(time.RFC3339),
			HasProfile: m.Profile != nil,
		})
	}
	return result, nil
}

func mapToResponse(wp workplace.Workplace) workplace.WorkplaceResponse {
	return workplace.WorkplaceResponse{
		ID:      wp.ID,
		OwnerID: wp.OwnerID,
		Name:    wp.Name,
		Address: wp.Address,
	}
}

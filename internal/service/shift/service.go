package shift

import (
	"context"
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/geekganization/MOUP-sub000/internal/pkg/timeutil"
	"github.com/google/uuid"
)

type ShiftServiceImpl struct {
	shiftRepo     shift.Repository
	workplaceRepo workplace.Repository
}

func NewShiftService(shiftRepo shift.Repository, workplaceRepo workplace.Repository) shift.Service {
	return &ShiftServiceImpl{
		shiftRepo:     shiftRepo,
		workplaceRepo: workplaceRepo,
	}
}

func (s *ShiftServiceImpl) Create(ctx context.Context, workerID string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	isMember, err := s.workplaceRepo.IsMember(ctx, req.WorkplaceID, workerID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if !isMember {
		return shift.ShiftResponse{}, workplace.ErrNotMember
	}

	eventDate, err := time.Parse("2006-01-02", req.EventDate)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	event := shift.Event{
		ID:           uuid.NewString(),
		WorkerID:     workerID,
		WorkplaceID:  req.WorkplaceID,
		EventDate:    eventDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakMinutes: req.BreakMinutes,
		Memo:         req.Memo,
	}

	created, err := s.shiftRepo.Create(ctx, event)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *ShiftServiceImpl) Update(ctx context.Context, workerID string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	current, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if current.WorkerID != workerID {
		return shift.ShiftResponse{}, shift.ErrNotShiftOwner
	}

	if req.EventDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		current.EventDate = parsed
	}
	if req.StartTime != nil {
		current.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		current.EndTime = *req.EndTime
	}
	if req.BreakMinutes != nil {
		current.BreakMinutes = *req.BreakMinutes
	}
	if req.Memo != nil {
		current.Memo = req.Memo
	}

	updated, err := s.shiftRepo.Update(ctx, current)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *ShiftServiceImpl) Delete(ctx context.Context, workerID, id string) error {
	current, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.WorkerID != workerID {
		return shift.ErrNotShiftOwner
	}

	return s.shiftRepo.Delete(ctx, id)
}

func (s *ShiftServiceImpl) ListMonth(ctx context.Context, workerID string, year, month int) ([]shift.ShiftResponse, error) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	events, err := s.shiftRepo.ListByWorkerAndRange(ctx, workerID, from, to)
	if err != nil {
		return nil, err
	}

	result := make([]shift.ShiftResponse, 0, len(events))
	for _, ev := range events {
		result = append(result, mapToResponse(ev))
	}
	return result, nil
}

func mapToResponse(ev shift.Event) shift.ShiftResponse {
	resp := shift.ShiftResponse{
		ID:           ev.ID,
		WorkerID:     ev.WorkerID,
		WorkplaceID:  ev.WorkplaceID,
		EventDate:    ev.EventDate.Format("2006-01-02"),
		StartTime:    ev.StartTime,
		EndTime:      ev.EndTime,
		BreakMinutes: ev.BreakMinutes,
		Memo:         ev.Memo,
	}

	// Times are validated on the way in; a stored shift that no longer
	// parses just shows zero worked time.
	if diff, err := timeutil.Diff(ev.StartTime, ev.EndTime, ev.BreakMinutes); err == nil {
		resp.WorkedTime = timeutil.FormatMinutes(diff.TotalMinutes)
		resp.WorkedMinutes = diff.TotalMinutes
	}

	return resp
}

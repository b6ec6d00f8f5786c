package shift

import (
	"context"
	"testing"
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/shift"
	"github.com/geekganization/MOUP-sub000/internal/domain/workplace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShiftRepo struct {
	shift.Repository
	byID map[string]shift.Event
}

func newStubShiftRepo() *stubShiftRepo {
	return &stubShiftRepo{byID: make(map[string]shift.Event)}
}

func (s *stubShiftRepo) Create(ctx context.Context, ev shift.Event) (shift.Event, error) {
	ev.CreatedAt = time.Now()
	ev.UpdatedAt = ev.CreatedAt
	s.byID[ev.ID] = ev
	return ev, nil
}

func (s *stubShiftRepo) Update(ctx context.Context, ev shift.Event) (shift.Event, error) {
	if _, ok := s.byID[ev.ID]; !ok {
		return shift.Event{}, shift.ErrShiftNotFound
	}
	ev.UpdatedAt = time.Now()
	s.byID[ev.ID] = ev
	return ev, nil
}

func (s *stubShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := s.byID[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *stubShiftRepo) GetByID(ctx context.Context, id string) (shift.Event, error) {
	ev, ok := s.byID[id]
	if !ok {
		return shift.Event{}, shift.ErrShiftNotFound
	}
	return ev, nil
}

func (s *stubShiftRepo) ListByWorkerAndRange(ctx context.Context, workerID string, from, to time.Time) ([]shift.Event, error) {
	var events []shift.Event
	for _, ev := range s.byID {
		if ev.WorkerID == workerID && !ev.EventDate.Before(from) && ev.EventDate.Before(to) {
			events = append(events, ev)
		}
	}
	return events, nil
}

type stubWorkplaceRepo struct {
	workplace.Repository
	memberships map[string]bool // workplaceID:workerID
}

func (s *stubWorkplaceRepo) IsMember(ctx context.Context, workplaceID, workerID string) (bool, error) {
	return s.memberships[workplaceID+":"+workerID], nil
}

func memberOf(pairs ...string) *stubWorkplaceRepo {
	m := make(map[string]bool)
	for _, p := range pairs {
		m[p] = true
	}
	return &stubWorkplaceRepo{memberships: m}
}

func TestCreate_RecordsShift(t *testing.T) {
	repo := newStubShiftRepo()
	svc := NewShiftService(repo, memberOf("wp-1:worker-1"))

	got, err := svc.Create(context.Background(), "worker-1", shift.CreateShiftRequest{
		WorkplaceID: "wp-1",
		EventDate:   "2026-08-15",
		StartTime:   "22:00",
		EndTime:     "06:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "worker-1", got.WorkerID)
	assert.Equal(t, "2026-08-15", got.EventDate)
	assert.Equal(t, "22:00", got.StartTime)
	assert.Equal(t, 480, got.WorkedMinutes) // wraps past midnight
	assert.Equal(t, "8h 0m", got.WorkedTime)
	assert.Len(t, repo.byID, 1)
}

func TestCreate_RejectsNonMember(t *testing.T) {
	svc := NewShiftService(newStubShiftRepo(), memberOf())

	_, err := svc.Create(context.Background(), "worker-1", shift.CreateShiftRequest{
		WorkplaceID: "wp-1",
		EventDate:   "2026-08-15",
		StartTime:   "09:00",
		EndTime:     "18:00",
	})
	assert.ErrorIs(t, err, workplace.ErrNotMember)
}

func TestCreate_RejectsInvalidTimes(t *testing.T) {
	svc := NewShiftService(newStubShiftRepo(), memberOf("wp-1:worker-1"))

	_, err := svc.Create(context.Background(), "worker-1", shift.CreateShiftRequest{
		WorkplaceID: "wp-1",
		EventDate:   "2026-08-15",
		StartTime:   "9:00", // must be zero-padded
		EndTime:     "18:00",
	})
	assert.Error(t, err)
}

func TestUpdate_OnlyOwnerMayEdit(t *testing.T) {
	repo := newStubShiftRepo()
	svc := NewShiftService(repo, memberOf("wp-1:worker-1"))

	created, err := svc.Create(context.Background(), "worker-1", shift.CreateShiftRequest{
		WorkplaceID: "wp-1",
		EventDate:   "2026-08-15",
		StartTime:   "09:00",
		EndTime:     "18:00",
	})
	require.NoError(t, err)

	newEnd := "17:00"
	_, err = svc.Update(context.Background(), "worker-2", shift.UpdateShiftRequest{
		ID:      created.ID,
		EndTime: &newEnd,
	})
	assert.ErrorIs(t, err, shift.ErrNotShiftOwner)

	got, err := svc.Update(context.Background(), "worker-1", shift.UpdateShiftRequest{
		ID:      created.ID,
		EndTime: &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, "17:00", got.EndTime)
	assert.Equal(t, "09:00", got.StartTime) // untouched fields survive
}

func TestDelete_OnlyOwnerMayDelete(t *testing.T) {
	repo := newStubShiftRepo()
	svc := NewShiftService(repo, memberOf("wp-1:worker-1"))

	created, err := svc.Create(context.Background(), "worker-1", shift.CreateShiftRequest{
		WorkplaceID: "wp-1",
		EventDate:   "2026-08-15",
		StartTime:   "09:00",
		EndTime:     "18:00",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), "worker-2", created.ID), shift.ErrNotShiftOwner)
	require.NoError(t, svc.Delete(context.Background(), "worker-1", created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), "worker-1", created.ID), shift.ErrShiftNotFound)
}

func TestListMonth_FiltersToCalendarMonth(t *testing.T) {
	repo := newStubShiftRepo()
	svc := NewShiftService(repo, memberOf("wp-1:worker-1"))

	for _, date := range []string{"2026-07-31", "2026-08-01", "2026-08-31", "2026-09-01"} {
		_, err := svc.Create(context.Background(), "worker-1", shift.CreateShiftRequest{
			WorkplaceID: "wp-1",
			EventDate:   date,
			StartTime:   "09:00",
			EndTime:     "18:00",
		})
		require.NoError(t, err)
	}

	got, err := svc.ListMonth(context.Background(), "worker-1", 2026, 8)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

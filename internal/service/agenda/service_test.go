package agenda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	blackoutRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/blackout"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
)

type fakeScheduleRepo struct {
	rows     []*domain.ScheduleDay
	upserted []*domain.ScheduleDay
}

func (f *fakeScheduleRepo) GetWeek(_ context.Context, _ int64) ([]*domain.ScheduleDay, error) {
	return f.rows, nil
}

func (f *fakeScheduleRepo) UpsertDay(_ context.Context, day *domain.ScheduleDay) error {
	f.upserted = append(f.upserted, day)
	for i, row := range f.rows {
		if row.Weekday == day.Weekday {
			f.rows[i] = day
			return nil
		}
	}
	f.rows = append(f.rows, day)
	return nil
}

type fakeBlackoutRepo struct {
	items   map[int64]*domain.Blackout
	nextID  int64
	deleted []int64
}

func newFakeBlackoutRepo() *fakeBlackoutRepo {
	return &fakeBlackoutRepo{items: make(map[int64]*domain.Blackout)}
}

func (f *fakeBlackoutRepo) Create(_ context.Context, b *domain.Blackout) (*domain.Blackout, error) {
	f.nextID++
	stored := *b
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.items[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeBlackoutRepo) GetByID(_ context.Context, id int64) (*domain.Blackout, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, blackoutRepo.ErrBlackoutNotFound
	}
	return b, nil
}

func (f *fakeBlackoutRepo) ListByStaff(_ context.Context, staffID int64) ([]*domain.Blackout, error) {
	var result []*domain.Blackout
	for _, b := range f.items {
		if b.StaffID == staffID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBlackoutRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return blackoutRepo.ErrBlackoutNotFound
	}
	delete(f.items, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	schedule  *fakeScheduleRepo
	blackouts *fakeBlackoutRepo
	users     *fakeUserRepo
}

func newFixture() *fixture {
	return &fixture{
		schedule:  &fakeScheduleRepo{},
		blackouts: newFakeBlackoutRepo(),
		users: &fakeUserRepo{users: map[int64]*domain.User{
			7:  {ID: 7, Role: domain.RoleStaff, Active: true},
			15: {ID: 15, Role: domain.RoleClient, Active: true},
		}},
	}
}

func (f *fixture) service() *Service {
	return NewService(f.schedule, f.blackouts, f.users, nopLogger{})
}

func TestGetWeek_FillsMissingDaysAsInactive(t *testing.T) {
	f := newFixture()
	f.schedule.rows = []*domain.ScheduleDay{
		{StaffID: 7, Weekday: 1, Active: true, Start1: timeStr("09:00"), End1: timeStr("18:00")},
		{StaffID: 7, Weekday: 3, Active: true, Start1: timeStr("10:00"), End1: timeStr("16:00")},
	}

	resp, err := f.service().GetWeek(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	for i, day := range resp.Days {
		assert.Equal(t, i+1, day.Weekday)
	}
	assert.True(t, resp.Days[0].Active)
	assert.False(t, resp.Days[1].Active)
	assert.True(t, resp.Days[2].Active)
	assert.False(t, resp.Days[6].Active)
}

func TestGetWeek_CallerChecks(t *testing.T) {
	f := newFixture()

	_, err := f.service().GetWeek(context.Background(), 999)
	assert.ErrorIs(t, err, ErrStaffNotFound)

	_, err = f.service().GetWeek(context.Background(), 15)
	assert.ErrorIs(t, err, ErrNotStaff)
}

func TestUpdateWeek_UpsertsAllDaysAndReturnsWeek(t *testing.T) {
	f := newFixture()

	resp, err := f.service().UpdateWeek(context.Background(), &models.UpdateWeekRequest{
		CallerID: 7,
		Days:     fullWeek(),
	})
	require.NoError(t, err)

	assert.Len(t, f.schedule.upserted, 7)
	require.Len(t, resp.Days, 7)
	assert.True(t, resp.Days[0].Active)
	assert.False(t, resp.Days[5].Active)
}

func TestUpdateWeek_ClearsWindowsOfInactiveDay(t *testing.T) {
	f := newFixture()
	days := fullWeek()
	days[5].Start1 = timeStr("09:00") // окна неактивного дня должны затереться
	days[5].End1 = timeStr("18:00")

	_, err := f.service().UpdateWeek(context.Background(), &models.UpdateWeekRequest{
		CallerID: 7,
		Days:     days,
	})
	require.NoError(t, err)

	saturday := f.schedule.upserted[5]
	assert.False(t, saturday.Active)
	assert.Nil(t, saturday.Start1)
	assert.Nil(t, saturday.End1)
}

func TestUpdateWeek_RejectsInvalidWeek(t *testing.T) {
	f := newFixture()

	_, err := f.service().UpdateWeek(context.Background(), &models.UpdateWeekRequest{
		CallerID: 7,
		Days:     fullWeek()[:5],
	})
	assert.ErrorIs(t, err, ErrIncompleteWeek)
	assert.Empty(t, f.schedule.upserted)
}

func TestCreateBlackout(t *testing.T) {
	f := newFixture()
	start := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)

	resp, err := f.service().CreateBlackout(context.Background(), &models.CreateBlackoutRequest{
		CallerID: 7,
		StartAt:  start,
		EndAt:    start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, start, resp.StartAt)
}

func TestCreateBlackout_InvalidInterval(t *testing.T) {
	f := newFixture()
	start := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *models.CreateBlackoutRequest
	}{
		{
			name: "zero start",
			req:  &models.CreateBlackoutRequest{CallerID: 7, EndAt: start},
		},
		{
			name: "zero end",
			req:  &models.CreateBlackoutRequest{CallerID: 7, StartAt: start},
		},
		{
			name: "start equals end",
			req:  &models.CreateBlackoutRequest{CallerID: 7, StartAt: start, EndAt: start},
		},
		{
			name: "start after end",
			req:  &models.CreateBlackoutRequest{CallerID: 7, StartAt: start.Add(time.Hour), EndAt: start},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service().CreateBlackout(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidBlackout)
		})
	}
}

func TestDeleteBlackout(t *testing.T) {
	f := newFixture()
	start := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)
	created, err := f.blackouts.Create(context.Background(), &domain.Blackout{
		StaffID: 7, StartAt: start, EndAt: start.Add(time.Hour),
	})
	require.NoError(t, err)

	require.NoError(t, f.service().DeleteBlackout(context.Background(), 7, created.ID))
	assert.Contains(t, f.blackouts.deleted, created.ID)
}

func TestDeleteBlackout_Errors(t *testing.T) {
	f := newFixture()
	start := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)
	foreign, err := f.blackouts.Create(context.Background(), &domain.Blackout{
		StaffID: 8, StartAt: start, EndAt: start.Add(time.Hour),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.service().DeleteBlackout(context.Background(), 7, 999), ErrBlackoutNotFound)
	assert.ErrorIs(t, f.service().DeleteBlackout(context.Background(), 7, foreign.ID), ErrAccessDenied)
	assert.Empty(t, f.blackouts.deleted)
}

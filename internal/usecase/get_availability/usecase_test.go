package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/servicecatalog"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeUserRepo struct {
	user       *domain.User
	err        error
	enabled    bool
	enabledErr error
}

func (f *fakeUserRepo) GetByID(_ context.Context, _ int64) (*domain.User, error) {
	return f.user, f.err
}

func (f *fakeUserRepo) IsServiceEnabled(_ context.Context, _, _ int64) (bool, error) {
	return f.enabled, f.enabledErr
}

type fakeScheduleRepo struct {
	day *domain.ScheduleDay
	err error
}

func (f *fakeScheduleRepo) GetDay(_ context.Context, _ int64, _ int) (*domain.ScheduleDay, error) {
	return f.day, f.err
}

type fakeBlackoutRepo struct {
	items []*domain.Blackout
	err   error
}

func (f *fakeBlackoutRepo) ListOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Blackout, error) {
	return f.items, f.err
}

type fakeAppointmentRepo struct {
	items []*domain.Appointment
	err   error
}

func (f *fakeAppointmentRepo) ListBlockingOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Appointment, error) {
	return f.items, f.err
}

type fakeResolver struct {
	duration int
}

func (f *fakeResolver) Resolve(_ context.Context, _, _ int64, fallbackMinutes int) int {
	if f.duration > 0 {
		return f.duration
	}
	return fallbackMinutes
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	services     *fakeServiceRepo
	users        *fakeUserRepo
	schedule     *fakeScheduleRepo
	blackouts    *fakeBlackoutRepo
	appointments *fakeAppointmentRepo
	resolver     *fakeResolver
}

func timeStr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

// Понедельник, 2025-10-13
var testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	return &fixture{
		services: &fakeServiceRepo{service: &domain.Service{
			ID:              42,
			Name:            "Мужская стрижка",
			DurationMinutes: 60,
			Active:          true,
		}},
		users: &fakeUserRepo{
			user:    &domain.User{ID: 7, Role: domain.RoleStaff, Active: true},
			enabled: true,
		},
		schedule: &fakeScheduleRepo{day: &domain.ScheduleDay{
			StaffID: 7,
			Weekday: 1,
			Active:  true,
			Start1:  timeStr("09:00"),
			End1:    timeStr("12:00"),
		}},
		blackouts:    &fakeBlackoutRepo{},
		appointments: &fakeAppointmentRepo{},
		resolver:     &fakeResolver{},
	}
}

func (f *fixture) useCase() *UseCase {
	return NewUseCase(f.services, f.users, f.schedule, f.blackouts, f.appointments, f.resolver, nopLogger{})
}

func validRequest() *Request {
	return &Request{ServiceID: 42, StaffID: 7, Date: testDate}
}

func TestExecute_HappyPath(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 60, resp.ResolvedDurationMinutes)
	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, slotStrings(resp.Slots))
}

func TestExecute_DurationOverride(t *testing.T) {
	f := newFixture()
	f.resolver.duration = 90

	resp, err := f.useCase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, 90, resp.ResolvedDurationMinutes)
	assert.Equal(t, []string{"09:00", "10:30"}, slotStrings(resp.Slots))
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "non-positive service id", req: &Request{ServiceID: 0, StaffID: 7, Date: testDate}},
		{name: "non-positive staff id", req: &Request{ServiceID: 42, StaffID: -1, Date: testDate}},
		{name: "zero date", req: &Request{ServiceID: 42, StaffID: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			_, err := f.useCase().Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture()
	f.services.service = nil
	f.services.err = serviceRepo.ErrServiceNotFound

	_, err := f.useCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	f := newFixture()
	f.users.user = nil
	f.users.err = userRepo.ErrUserNotFound

	_, err := f.useCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

// Непроходные условия, кроме not-found, дают пустой список слотов, а не ошибку
func TestExecute_EmptyResultCases(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name:  "inactive service",
			setup: func(f *fixture) { f.services.service.Active = false },
		},
		{
			name:  "inactive staff",
			setup: func(f *fixture) { f.users.user.Active = false },
		},
		{
			name:  "user is not staff",
			setup: func(f *fixture) { f.users.user.Role = domain.RoleClient },
		},
		{
			name:  "service not enabled for staff",
			setup: func(f *fixture) { f.users.enabled = false },
		},
		{
			name: "no schedule row for weekday",
			setup: func(f *fixture) {
				f.schedule.day = nil
				f.schedule.err = scheduleRepo.ErrDayNotFound
			},
		},
		{
			name:  "inactive schedule day",
			setup: func(f *fixture) { f.schedule.day.Active = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			resp, err := f.useCase().Execute(context.Background(), validRequest())
			require.NoError(t, err)
			assert.Empty(t, resp.Slots)
		})
	}
}

func TestExecute_BusyIntervalsExcluded(t *testing.T) {
	f := newFixture()
	f.blackouts.items = []*domain.Blackout{
		{StaffID: 7, StartAt: day(9, 0), EndAt: day(10, 0)},
	}
	f.appointments.items = []*domain.Appointment{
		{StaffID: 7, StartAt: day(11, 0), EndAt: day(12, 0), Status: domain.StatusConfirmed},
	}

	resp, err := f.useCase().Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"10:00"}, slotStrings(resp.Slots))
}

func TestExecute_RepositoryError(t *testing.T) {
	f := newFixture()
	f.blackouts.err = errors.New("connection refused")

	_, err := f.useCase().Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

type fakeAppointmentRepo struct {
	byProtocol map[string]*domain.Appointment
	lastFilter domain.AppointmentFilter
	list       []*domain.Appointment
}

func (f *fakeAppointmentRepo) GetByProtocol(_ context.Context, protocol string) (*domain.Appointment, error) {
	appt, ok := f.byProtocol[protocol]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) ListWithFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.list, nil
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

func newService(appts *fakeAppointmentRepo, users *fakeUserRepo) *Service {
	return NewService(appts, users, nopLogger{})
}

func defaultUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*domain.User{
		7:  {ID: 7, Role: domain.RoleStaff, Active: true},
		15: {ID: 15, Role: domain.RoleClient, Active: true},
	}}
}

func TestGetByProtocol(t *testing.T) {
	appts := &fakeAppointmentRepo{byProtocol: map[string]*domain.Appointment{
		"BRV-20251013-000042": {
			ID:       1,
			Protocol: "BRV-20251013-000042",
			Status:   domain.StatusPending,
		},
	}}

	resp, err := newService(appts, defaultUsers()).GetByProtocol(context.Background(), "BRV-20251013-000042")
	require.NoError(t, err)
	assert.Equal(t, "BRV-20251013-000042", resp.Protocol)
	assert.Equal(t, "pending", resp.Status)
}

func TestGetByProtocol_NotFound(t *testing.T) {
	appts := &fakeAppointmentRepo{byProtocol: map[string]*domain.Appointment{}}

	_, err := newService(appts, defaultUsers()).GetByProtocol(context.Background(), "BRV-20251013-999999")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListClientAppointments_FiltersByCaller(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	_, err := newService(appts, defaultUsers()).ListClientAppointments(context.Background(), &models.ListRequest{
		CallerID: 15,
		From:     &from,
		To:       &to,
		Statuses: []string{"pending", "confirmed"},
	})
	require.NoError(t, err)

	require.NotNil(t, appts.lastFilter.ClientID)
	assert.Equal(t, int64(15), *appts.lastFilter.ClientID)
	assert.Nil(t, appts.lastFilter.StaffID)
	assert.Equal(t, &from, appts.lastFilter.From)
	assert.Equal(t, []domain.AppointmentStatus{domain.StatusPending, domain.StatusConfirmed}, appts.lastFilter.Statuses)
}

func TestListClientAppointments_AccessChecks(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	svc := newService(appts, defaultUsers())

	// сотрудник не может смотреть историю как клиент
	_, err := svc.ListClientAppointments(context.Background(), &models.ListRequest{CallerID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.ListClientAppointments(context.Background(), &models.ListRequest{CallerID: 999})
	assert.ErrorIs(t, err, ErrCallerNotFound)
}

func TestListClientAppointments_InvalidStatus(t *testing.T) {
	appts := &fakeAppointmentRepo{}

	_, err := newService(appts, defaultUsers()).ListClientAppointments(context.Background(), &models.ListRequest{
		CallerID: 15,
		Statuses: []string{"done"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListStaffAppointments_FiltersByCaller(t *testing.T) {
	appts := &fakeAppointmentRepo{list: []*domain.Appointment{
		{ID: 1, StaffID: 7, Status: domain.StatusConfirmed},
		{ID: 2, StaffID: 7, Status: domain.StatusPending},
	}}

	resp, err := newService(appts, defaultUsers()).ListStaffAppointments(context.Background(), &models.ListRequest{
		CallerID: 7,
	})
	require.NoError(t, err)

	require.NotNil(t, appts.lastFilter.StaffID)
	assert.Equal(t, int64(7), *appts.lastFilter.StaffID)
	assert.Nil(t, appts.lastFilter.ClientID)
	assert.Len(t, resp.Appointments, 2)
}

func TestListStaffAppointments_ClientDenied(t *testing.T) {
	appts := &fakeAppointmentRepo{}

	_, err := newService(appts, defaultUsers()).ListStaffAppointments(context.Background(), &models.ListRequest{
		CallerID: 15,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

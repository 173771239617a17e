package create_appointment

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	protocolRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/protocol"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/servicecatalog"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	return f.service, f.err
}

type fakeUserRepo struct {
	users   map[int64]*domain.User
	enabled bool
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) IsServiceEnabled(_ context.Context, _, _ int64) (bool, error) {
	return f.enabled, nil
}

type fakeAppointmentRepo struct {
	existing  []*domain.Appointment
	created   []*domain.Appointment
	nextID    int64
	createErr error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	stored := *appt
	stored.ID = f.nextID
	stored.CreatedAt = time.Now()
	f.created = append(f.created, &stored)
	return &stored, nil
}

// Пересечение полуоткрытых интервалов [start, end): start < to AND end > from
func (f *fakeAppointmentRepo) ListBlockingOverlapping(_ context.Context, staffID int64, from, to time.Time) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.existing {
		if appt.StaffID == staffID && appt.Status.IsBlocking() &&
			appt.StartAt.Before(to) && appt.EndAt.After(from) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) ExistsByProtocol(_ context.Context, protocol string) (bool, error) {
	for _, appt := range f.existing {
		if appt.Protocol == protocol {
			return true, nil
		}
	}
	return false, nil
}

type fakeProtocolRepo struct {
	created          []*domain.ProtocolRecord
	collisions       int // первые N проверок уникальности отвечают "код занят"
	insertCollisions int // первые N вставок падают на unique constraint
}

func (f *fakeProtocolRepo) Create(_ context.Context, record *domain.ProtocolRecord) (*domain.ProtocolRecord, error) {
	if f.insertCollisions > 0 {
		f.insertCollisions--
		return nil, protocolRepo.ErrDuplicateCode
	}
	stored := *record
	stored.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &stored)
	return &stored, nil
}

func (f *fakeProtocolRepo) ExistsByCode(_ context.Context, _ string) (bool, error) {
	if f.collisions > 0 {
		f.collisions--
		return true, nil
	}
	return false, nil
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

type fakeTxManager struct {
	commitErr error // имитация ошибки на коммите транзакции
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return f.commitErr
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	services     *fakeServiceRepo
	users        *fakeUserRepo
	appointments *fakeAppointmentRepo
	protocols    *fakeProtocolRepo
	resolver     *fakeResolver
	tx           *fakeTxManager
}

var bookingStart = time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	return &fixture{
		services: &fakeServiceRepo{service: &domain.Service{
			ID:              42,
			Name:            "Мужская стрижка",
			DurationMinutes: 60,
			Active:          true,
		}},
		users: &fakeUserRepo{
			users: map[int64]*domain.User{
				7:  {ID: 7, Name: "Мастер", Role: domain.RoleStaff, Active: true},
				15: {ID: 15, Name: "Иван Петров", Phone: "+79990001122", Email: "ivan@example.com", Role: domain.RoleClient, Active: true},
			},
			enabled: true,
		},
		appointments: &fakeAppointmentRepo{},
		protocols:    &fakeProtocolRepo{},
		resolver:     &fakeResolver{},
		tx:           &fakeTxManager{},
	}
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(f.services, f.users, f.appointments, f.protocols, f.resolver,
		f.tx, "BRV", 10, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: bookingStart}
	return uc
}

func publicRequest() *PublicRequest {
	return &PublicRequest{
		ServiceID:   42,
		StaffID:     7,
		ClientName:  "Анна Смирнова",
		ClientPhone: "+79991234567",
		StartAt:     bookingStart,
	}
}

func TestExecutePublic_HappyPath(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, bookingStart, resp.StartAt)
	assert.Equal(t, bookingStart.Add(60*time.Minute), resp.EndAt)
	assert.Nil(t, resp.ClientID)
	assert.Equal(t, "Анна Смирнова", resp.ClientName)
	assert.Regexp(t, regexp.MustCompile(`^BRV-20251013-\d{6}$`), resp.Protocol)

	require.Len(t, f.protocols.created, 1)
	assert.Equal(t, resp.Protocol, f.protocols.created[0].Code)
	assert.Equal(t, domain.ProtocolKindAppointment, f.protocols.created[0].Kind)
	assert.Contains(t, string(f.protocols.created[0].Payload), "Мужская стрижка")
}

func TestExecutePublic_EndAtUsesResolvedDuration(t *testing.T) {
	f := newFixture()
	f.resolver.duration = 45

	resp, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	require.NoError(t, err)

	assert.Equal(t, bookingStart.Add(45*time.Minute), resp.EndAt)
}

func TestExecutePublic_SlotConflict(t *testing.T) {
	f := newFixture()
	f.appointments.existing = []*domain.Appointment{
		{StaffID: 7, StartAt: bookingStart.Add(30 * time.Minute), EndAt: bookingStart.Add(90 * time.Minute), Status: domain.StatusConfirmed},
	}

	_, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecutePublic_TouchingAppointmentDoesNotConflict(t *testing.T) {
	// Существующая запись заканчивается ровно в момент начала новой:
	// полуоткрытые интервалы не пересекаются
	f := newFixture()
	f.appointments.existing = []*domain.Appointment{
		{StaffID: 7, StartAt: bookingStart.Add(-60 * time.Minute), EndAt: bookingStart, Status: domain.StatusConfirmed},
		{StaffID: 7, StartAt: bookingStart.Add(60 * time.Minute), EndAt: bookingStart.Add(120 * time.Minute), Status: domain.StatusPending},
	}

	_, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	assert.NoError(t, err)
}

func TestExecutePublic_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture()
	f.appointments.existing = []*domain.Appointment{
		{StaffID: 7, StartAt: bookingStart, EndAt: bookingStart.Add(60 * time.Minute), Status: domain.StatusCancelled},
	}

	_, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	assert.NoError(t, err)
}

func TestExecutePublic_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(req *PublicRequest)
	}{
		{name: "missing client name", setup: func(req *PublicRequest) { req.ClientName = "   " }},
		{name: "missing client phone", setup: func(req *PublicRequest) { req.ClientPhone = "" }},
		{name: "zero start time", setup: func(req *PublicRequest) { req.StartAt = time.Time{} }},
		{name: "non-positive service id", setup: func(req *PublicRequest) { req.ServiceID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := publicRequest()
			tt.setup(req)

			_, err := newFixture().useCase().ExecutePublic(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecutePublic_PreconditionErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name:    "service not found",
			setup:   func(f *fixture) { f.services.service = nil; f.services.err = serviceRepo.ErrServiceNotFound },
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "service inactive",
			setup:   func(f *fixture) { f.services.service.Active = false },
			wantErr: ErrServiceInactive,
		},
		{
			name:    "staff not found",
			setup:   func(f *fixture) { delete(f.users.users, 7) },
			wantErr: ErrStaffNotFound,
		},
		{
			name:    "staff not bookable",
			setup:   func(f *fixture) { f.users.users[7].Active = false },
			wantErr: ErrStaffNotBookable,
		},
		{
			name:    "service not enabled",
			setup:   func(f *fixture) { f.users.enabled = false },
			wantErr: ErrServiceNotEnabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			_, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecuteClient_IdentityFromCaller(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().ExecuteClient(context.Background(), &ClientRequest{
		CallerID:  15,
		ServiceID: 42,
		StaffID:   7,
		StartAt:   bookingStart,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ClientID)
	assert.Equal(t, int64(15), *resp.ClientID)
	assert.Equal(t, "Иван Петров", resp.ClientName)
	assert.Equal(t, "+79990001122", resp.ClientPhone)
	require.NotNil(t, resp.ClientEmail)
	assert.Equal(t, "ivan@example.com", *resp.ClientEmail)
}

func TestExecuteClient_CallerMustBeActiveClient(t *testing.T) {
	tests := []struct {
		name     string
		callerID int64
		setup    func(f *fixture)
		wantErr  error
	}{
		{
			name:     "caller is staff",
			callerID: 7,
			setup:    func(f *fixture) {},
			wantErr:  ErrAccessDenied,
		},
		{
			name:     "caller is inactive client",
			callerID: 15,
			setup:    func(f *fixture) { f.users.users[15].Active = false },
			wantErr:  ErrAccessDenied,
		},
		{
			name:     "caller not found",
			callerID: 999,
			setup:    func(f *fixture) {},
			wantErr:  ErrClientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			_, err := f.useCase().ExecuteClient(context.Background(), &ClientRequest{
				CallerID:  tt.callerID,
				ServiceID: 42,
				StaffID:   7,
				StartAt:   bookingStart,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecuteStaff_ExistingClient(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().ExecuteStaff(context.Background(), &StaffRequest{
		CallerID:  7,
		ServiceID: 42,
		StaffID:   7,
		ClientID:  ptr.Ptr(int64(15)),
		StartAt:   bookingStart,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ClientID)
	assert.Equal(t, int64(15), *resp.ClientID)
	assert.Equal(t, "Иван Петров", resp.ClientName)
}

func TestExecuteStaff_WalkIn(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().ExecuteStaff(context.Background(), &StaffRequest{
		CallerID:    7,
		ServiceID:   42,
		StaffID:     7,
		ClientName:  ptr.Ptr("Ольга Кузнецова"),
		ClientPhone: ptr.Ptr("+79997654321"),
		StartAt:     bookingStart,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.ClientID)
	assert.Equal(t, "Ольга Кузнецова", resp.ClientName)
	assert.Equal(t, "+79997654321", resp.ClientPhone)
}

func TestExecuteStaff_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *StaffRequest
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name: "caller is not staff",
			req: &StaffRequest{
				CallerID: 15, ServiceID: 42, StaffID: 7,
				ClientName: ptr.Ptr("Гость"), ClientPhone: ptr.Ptr("+79990000000"),
				StartAt: bookingStart,
			},
			setup:   func(f *fixture) {},
			wantErr: ErrAccessDenied,
		},
		{
			name: "linked client is inactive",
			req: &StaffRequest{
				CallerID: 7, ServiceID: 42, StaffID: 7,
				ClientID: ptr.Ptr(int64(15)),
				StartAt:  bookingStart,
			},
			setup:   func(f *fixture) { f.users.users[15].Active = false },
			wantErr: ErrClientNotBookable,
		},
		{
			name: "linked client not found",
			req: &StaffRequest{
				CallerID: 7, ServiceID: 42, StaffID: 7,
				ClientID: ptr.Ptr(int64(999)),
				StartAt:  bookingStart,
			},
			setup:   func(f *fixture) {},
			wantErr: ErrClientNotFound,
		},
		{
			name: "walk-in without phone",
			req: &StaffRequest{
				CallerID: 7, ServiceID: 42, StaffID: 7,
				ClientName: ptr.Ptr("Гость"),
				StartAt:    bookingStart,
			},
			setup:   func(f *fixture) {},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			_, err := f.useCase().ExecuteStaff(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateProtocol_RetriesOnCollision(t *testing.T) {
	f := newFixture()
	f.protocols.collisions = 2

	resp, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BRV-20251013-\d{6}$`), resp.Protocol)
}

func TestGenerateProtocol_Exhausted(t *testing.T) {
	f := newFixture()
	f.protocols.collisions = 10 // все попытки упираются в занятый код

	_, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrProtocolExhausted)
}

func TestExecutePublic_ProtocolInsertRaceRetried(t *testing.T) {
	// Конкурент занял код между проверкой уникальности и вставкой:
	// транзакция перезапускается с новым кодом, бронирование проходит
	f := newFixture()
	f.protocols.insertCollisions = 2

	resp, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BRV-20251013-\d{6}$`), resp.Protocol)
	require.Len(t, f.protocols.created, 1)
}

func TestExecutePublic_ProtocolInsertRaceExhausted(t *testing.T) {
	f := newFixture()
	f.protocols.insertCollisions = 10

	_, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrProtocolExhausted)
}

func TestExecutePublic_ExclusionConstraintMapsToConflict(t *testing.T) {
	// Вставка проиграла гонку за слот на уровне БД (exclusion constraint):
	// клиент получает конфликт, а не внутреннюю ошибку
	f := newFixture()
	f.appointments.createErr = fmt.Errorf("%w: Create - staff_id=7", appointmentRepo.ErrOverlapConflict)

	_, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecutePublic_SerializationFailureMapsToConflict(t *testing.T) {
	// Проигрыш SERIALIZABLE транзакции на коммите (Postgres 40001) - это
	// конкурентное бронирование того же слота
	f := newFixture()
	f.tx.commitErr = fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "40001"})

	_, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecutePublic_UnrelatedCommitErrorStaysInternal(t *testing.T) {
	f := newFixture()
	f.tx.commitErr = fmt.Errorf("txmanager: commit transaction: %w", &pq.Error{Code: "53300"})

	_, err := f.useCase().ExecutePublic(context.Background(), publicRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSlotConflict)
}

func TestExecuteStaff_WalkInEmailNormalized(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().ExecuteStaff(context.Background(), &StaffRequest{
		CallerID:    7,
		ServiceID:   42,
		StaffID:     7,
		ClientName:  ptr.Ptr("Ольга Кузнецова"),
		ClientPhone: ptr.Ptr("+79997654321"),
		ClientEmail: ptr.Ptr("  olga@example.com  "),
		StartAt:     bookingStart,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.ClientEmail)
	assert.Equal(t, "olga@example.com", *resp.ClientEmail)
}

func TestExecuteStaff_WalkInBlankEmailDropped(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase().ExecuteStaff(context.Background(), &StaffRequest{
		CallerID:    7,
		ServiceID:   42,
		StaffID:     7,
		ClientName:  ptr.Ptr("Ольга Кузнецова"),
		ClientPhone: ptr.Ptr("+79997654321"),
		ClientEmail: ptr.Ptr("   "),
		StartAt:     bookingStart,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.ClientEmail)
	require.Len(t, f.appointments.created, 1)
	assert.Empty(t, f.appointments.created[0].ClientEmail)
}

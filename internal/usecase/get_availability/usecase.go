package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/servicecatalog"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
)

// UseCase use case расчета доступных слотов для записи.
// Результат - предварительный просмотр: транзакция создания записи никогда
// не доверяет ему и перепроверяет все заново на момент коммита.
type UseCase struct {
	serviceRepo      ServiceRepository
	userRepo         UserRepository
	scheduleRepo     ScheduleRepository
	blackoutRepo     BlackoutRepository
	appointmentRepo  AppointmentRepository
	durationResolver DurationResolver
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	scheduleRepo ScheduleRepository,
	blackoutRepo BlackoutRepository,
	appointmentRepo AppointmentRepository,
	durationResolver DurationResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:      serviceRepo,
		userRepo:         userRepo,
		scheduleRepo:     scheduleRepo,
		blackoutRepo:     blackoutRepo,
		appointmentRepo:  appointmentRepo,
		durationResolver: durationResolver,
		logger:           logger,
	}
}

// Execute выполняет use case расчета доступных слотов.
// Ошибка not-found возвращается только для несуществующих услуги/сотрудника;
// все остальные непроходные условия (неактивность, услуга не включена,
// нерабочий день) дают пустой список слотов, а не ошибку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: service=%d, staff=%d, date=%s",
		req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailability: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.Active {
		uc.logger.Info("GetAvailability: service id=%d is inactive", req.ServiceID)
		return emptyResponse(req, service.DurationMinutes), nil
	}

	// 3. Получаем сотрудника
	staff, err := uc.userRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetAvailability: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetAvailability: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if !staff.IsBookableStaff() {
		uc.logger.Info("GetAvailability: user id=%d is not an active staff member", req.StaffID)
		return emptyResponse(req, service.DurationMinutes), nil
	}

	// 4. Проверяем, что услуга включена для этого сотрудника
	enabled, err := uc.userRepo.IsServiceEnabled(ctx, req.StaffID, req.ServiceID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to check service enablement: %v", err)
		return nil, fmt.Errorf("%w: failed to check service enablement: %v", ErrInternal, err)
	}
	if !enabled {
		uc.logger.Info("GetAvailability: service id=%d is not enabled for staff id=%d",
			req.ServiceID, req.StaffID)
		return emptyResponse(req, service.DurationMinutes), nil
	}

	// 5. Резолвим эффективную длительность (персональный оверрайд сотрудника
	// или дефолт из каталога)
	duration := uc.durationResolver.Resolve(ctx, req.StaffID, req.ServiceID, service.DurationMinutes)

	// 6. Получаем расписание на день недели указанной даты
	weekday := domain.Weekday1to7(req.Date.Weekday())
	day, err := uc.scheduleRepo.GetDay(ctx, req.StaffID, weekday)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrDayNotFound) {
			uc.logger.Info("GetAvailability: staff id=%d has no schedule for weekday=%d", req.StaffID, weekday)
			return emptyResponse(req, duration), nil
		}
		uc.logger.Error("GetAvailability: failed to get schedule day: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule day: %v", ErrInternal, err)
	}

	// 7. Строим рабочие окна, привязанные к календарной дате
	windows := day.Windows(req.Date)
	if len(windows) == 0 {
		uc.logger.Info("GetAvailability: staff id=%d is inactive on weekday=%d", req.StaffID, weekday)
		return emptyResponse(req, duration), nil
	}

	// 8. Собираем занятые интервалы за весь день [00:00, 00:00 следующего дня)
	dayFrom, dayTo := dayBounds(req.Date)

	blackouts, err := uc.blackoutRepo.ListOverlapping(ctx, req.StaffID, dayFrom, dayTo)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get blackouts: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackouts: %v", ErrInternal, err)
	}

	appointments, err := uc.appointmentRepo.ListBlockingOverlapping(ctx, req.StaffID, dayFrom, dayTo)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	busy := collectBusyIntervals(blackouts, appointments)

	// 9. Генерируем слоты с шагом, равным длительности услуги
	slots := generateSlots(windows, duration, busy)

	uc.logger.Info("GetAvailability: generated %d slots for service=%d, staff=%d, date=%s",
		len(slots), req.ServiceID, req.StaffID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:                    req.Date,
		ServiceID:               req.ServiceID,
		StaffID:                 req.StaffID,
		ResolvedDurationMinutes: duration,
		Slots:                   slots,
	}, nil
}

package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	protocolRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/protocol"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/servicecatalog"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// errProtocolCodeTaken внутренний сигнал: конкурентная транзакция заняла
// сгенерированный код между проверкой уникальности и вставкой. Транзакция
// перезапускается целиком с новым кодом (после ошибки вставки текущая
// транзакция Postgres уже abort-нута).
var errProtocolCodeTaken = errors.New("protocol code taken concurrently")

// UseCase use case создания записи.
// Транзакция бронирования ничему не доверяет: все условия перепроверяются
// заново внутри сериализуемой транзакции на момент коммита.
type UseCase struct {
	serviceRepo      ServiceRepository
	userRepo         UserRepository
	appointmentRepo  AppointmentRepository
	protocolRepo     ProtocolRepository
	durationResolver DurationResolver
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger

	protocolPrefix      string
	protocolMaxAttempts int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	appointmentRepo AppointmentRepository,
	protocolRepo ProtocolRepository,
	durationResolver DurationResolver,
	txManager TransactionManager,
	protocolPrefix string,
	protocolMaxAttempts int,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:         serviceRepo,
		userRepo:            userRepo,
		appointmentRepo:     appointmentRepo,
		protocolRepo:        protocolRepo,
		durationResolver:    durationResolver,
		txManager:           txManager,
		timeProvider:        &RealTimeProvider{},
		logger:              logger,
		protocolPrefix:      protocolPrefix,
		protocolMaxAttempts: protocolMaxAttempts,
	}
}

// ExecutePublic создает запись для анонимного посетителя.
// Личность - всегда свободные имя и телефон, без связи с аккаунтом клиента.
func (uc *UseCase) ExecutePublic(ctx context.Context, req *PublicRequest) (*Response, error) {
	uc.logger.Info("CreateAppointment(public): service=%d, staff=%d, start=%s",
		req.ServiceID, req.StaffID, req.StartAt.Format(time.RFC3339))

	core := &bookingCore{
		ServiceID:   req.ServiceID,
		StaffID:     req.StaffID,
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientPhone: strings.TrimSpace(req.ClientPhone),
		ClientEmail: emailOrNil(ptr.Deref(req.ClientEmail)),
		StartAt:     req.StartAt,
		Notes:       req.Notes,
	}

	return uc.execute(ctx, core)
}

// ExecuteClient создает self-service запись.
// Личность принудительно берется из аккаунта вызывающего; вызывающий должен
// быть активным клиентом.
func (uc *UseCase) ExecuteClient(ctx context.Context, req *ClientRequest) (*Response, error) {
	uc.logger.Info("CreateAppointment(client): caller=%d, service=%d, staff=%d, start=%s",
		req.CallerID, req.ServiceID, req.StaffID, req.StartAt.Format(time.RFC3339))

	caller, err := uc.loadUser(ctx, req.CallerID, ErrClientNotFound)
	if err != nil {
		return nil, err
	}

	if !caller.IsActiveClient() {
		uc.logger.Warn("CreateAppointment(client): caller=%d is not an active client", req.CallerID)
		return nil, ErrAccessDenied
	}

	core := &bookingCore{
		ServiceID:   req.ServiceID,
		StaffID:     req.StaffID,
		ClientID:    ptr.Ptr(caller.ID),
		ClientName:  caller.Name,
		ClientPhone: caller.Phone,
		ClientEmail: emailOrNil(caller.Email),
		StartAt:     req.StartAt,
		Notes:       req.Notes,
	}

	return uc.execute(ctx, core)
}

// ExecuteStaff создает запись от имени сотрудника: либо для существующего
// клиента (проверяется активность и роль), либо walk-in по имени и телефону.
func (uc *UseCase) ExecuteStaff(ctx context.Context, req *StaffRequest) (*Response, error) {
	uc.logger.Info("CreateAppointment(staff): caller=%d, service=%d, staff=%d, start=%s",
		req.CallerID, req.ServiceID, req.StaffID, req.StartAt.Format(time.RFC3339))

	caller, err := uc.loadUser(ctx, req.CallerID, ErrStaffNotFound)
	if err != nil {
		return nil, err
	}

	if !caller.IsBookableStaff() {
		uc.logger.Warn("CreateAppointment(staff): caller=%d is not an active staff member", req.CallerID)
		return nil, ErrAccessDenied
	}

	core := &bookingCore{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		StartAt:   req.StartAt,
		Notes:     req.Notes,
	}

	if req.ClientID != nil {
		client, err := uc.loadUser(ctx, *req.ClientID, ErrClientNotFound)
		if err != nil {
			return nil, err
		}
		if !client.IsActiveClient() {
			uc.logger.Warn("CreateAppointment(staff): user=%d is not an active client", *req.ClientID)
			return nil, ErrClientNotBookable
		}
		core.ClientID = ptr.Ptr(client.ID)
		core.ClientName = client.Name
		core.ClientPhone = client.Phone
		core.ClientEmail = emailOrNil(client.Email)
	} else {
		core.ClientName = strings.TrimSpace(ptr.Deref(req.ClientName))
		core.ClientPhone = strings.TrimSpace(ptr.Deref(req.ClientPhone))
		core.ClientEmail = emailOrNil(ptr.Deref(req.ClientEmail))
	}

	return uc.execute(ctx, core)
}

// execute общее ядро бронирования
func (uc *UseCase) execute(ctx context.Context, core *bookingCore) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateCore(core); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 2. Все проверки и записи - в одной сериализуемой транзакции.
	// Проверка конфликта и вставка защищены FOR UPDATE по записям сотрудника:
	// из двух конкурентных бронирований одного слота выигрывает ровно одно.
	run := func(txCtx context.Context) error {
		// 2.1. Получаем услугу
		service, err := uc.serviceRepo.GetByID(txCtx, core.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateAppointment: service id=%d not found", core.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", core.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.Active {
			uc.logger.Warn("CreateAppointment: service id=%d is inactive", core.ServiceID)
			return ErrServiceInactive
		}

		// 2.2. Получаем сотрудника
		staff, err := uc.loadUser(txCtx, core.StaffID, ErrStaffNotFound)
		if err != nil {
			return err
		}
		if !staff.IsBookableStaff() {
			uc.logger.Warn("CreateAppointment: user id=%d is not an active staff member", core.StaffID)
			return ErrStaffNotBookable
		}

		// 2.3. Проверяем, что услуга включена для сотрудника
		enabled, err := uc.userRepo.IsServiceEnabled(txCtx, core.StaffID, core.ServiceID)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check service enablement: %v", err)
			return fmt.Errorf("%w: failed to check service enablement: %v", ErrInternal, err)
		}
		if !enabled {
			uc.logger.Warn("CreateAppointment: service id=%d is not enabled for staff id=%d",
				core.ServiceID, core.StaffID)
			return ErrServiceNotEnabled
		}

		// 2.4. Резолвим длительность и вычисляем конец записи
		duration := uc.durationResolver.Resolve(txCtx, core.StaffID, core.ServiceID, service.DurationMinutes)
		endAt := core.StartAt.Add(time.Duration(duration) * time.Minute)

		// 2.5. Проверяем конфликт с существующими блокирующими записями.
		// Интервалы полуоткрытые [start, end): соприкасающиеся границы не конфликтуют.
		overlapping, err := uc.appointmentRepo.ListBlockingOverlapping(txCtx, core.StaffID, core.StartAt, endAt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateAppointment: slot conflict for staff=%d, start=%s (%d overlapping)",
				core.StaffID, core.StartAt.Format(time.RFC3339), len(overlapping))
			return ErrSlotConflict
		}

		// 2.6. Генерируем уникальный код протокола
		protocol, err := uc.generateProtocol(txCtx)
		if err != nil {
			return err
		}

		// 2.7. Сохраняем протокол с аудит-снапшотом брони
		payload, err := buildAuditPayload(core, service, endAt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to build audit payload: %v", err)
			return fmt.Errorf("%w: failed to build audit payload: %v", ErrInternal, err)
		}

		if _, err := uc.protocolRepo.Create(txCtx, &domain.ProtocolRecord{
			Code:    protocol,
			Kind:    domain.ProtocolKindAppointment,
			Payload: payload,
		}); err != nil {
			if errors.Is(err, protocolRepo.ErrDuplicateCode) {
				uc.logger.Warn("CreateAppointment: protocol code %s taken concurrently", protocol)
				return errProtocolCodeTaken
			}
			uc.logger.Error("CreateAppointment: failed to create protocol record: %v", err)
			return fmt.Errorf("%w: failed to create protocol record: %v", ErrInternal, err)
		}

		// 2.8. Сохраняем запись в статусе pending
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			Protocol:    protocol,
			ServiceID:   core.ServiceID,
			StaffID:     core.StaffID,
			ClientID:    core.ClientID,
			ClientName:  core.ClientName,
			ClientPhone: core.ClientPhone,
			ClientEmail: ptr.Deref(core.ClientEmail),
			StartAt:     core.StartAt,
			EndAt:       endAt,
			Status:      domain.StatusPending,
			Notes:       core.Notes,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrOverlapConflict) {
				uc.logger.Warn("CreateAppointment: insert lost slot race for staff=%d, start=%s",
					core.StaffID, core.StartAt.Format(time.RFC3339))
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	}

	// Гонка по коду протокола перезапускает транзакцию с новым кодом;
	// каждый перезапуск расходует одну попытку генератора
	var err error
	for attempt := 1; ; attempt++ {
		err = uc.txManager.DoSerializable(ctx, run)
		if !errors.Is(err, errProtocolCodeTaken) || attempt >= uc.protocolMaxAttempts {
			break
		}
	}

	if errors.Is(err, errProtocolCodeTaken) {
		uc.logger.Error("CreateAppointment: protocol code races exhausted %d attempts", uc.protocolMaxAttempts)
		return nil, ErrProtocolExhausted
	}

	if err != nil {
		// Проигравший сериализацию (Postgres 40001 на коммите) - это
		// конкурентное бронирование того же слота, а не внутренняя ошибка
		if isSerializationFailure(err) {
			uc.logger.Warn("CreateAppointment: serialization failure for staff=%d, start=%s",
				core.StaffID, core.StartAt.Format(time.RFC3339))
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d, protocol=%s", result.ID, result.Protocol)

	return &Response{
		ID:          result.ID,
		Protocol:    result.Protocol,
		ServiceID:   result.ServiceID,
		StaffID:     result.StaffID,
		ClientID:    result.ClientID,
		ClientName:  result.ClientName,
		ClientPhone: result.ClientPhone,
		ClientEmail: emailOrNil(result.ClientEmail),
		StartAt:     result.StartAt,
		EndAt:       result.EndAt,
		Status:      string(result.Status),
		Notes:       result.Notes,
		CreatedAt:   result.CreatedAt,
	}, nil
}

// auditPayload снапшот брони, сохраняемый в протоколе для аудита
type auditPayload struct {
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	StaffID         int64   `json:"staffId"`
	ClientID        *int64  `json:"clientId,omitempty"`
	ClientName      string  `json:"clientName"`
	ClientPhone     string  `json:"clientPhone"`
	ClientEmail     *string `json:"clientEmail,omitempty"`
	StartAt         string  `json:"startAt"`
	EndAt           string  `json:"endAt"`
	DurationMinutes int     `json:"durationMinutes"`
}

func buildAuditPayload(core *bookingCore, service *domain.Service, endAt time.Time) (json.RawMessage, error) {
	return json.Marshal(auditPayload{
		ServiceID:       core.ServiceID,
		ServiceName:     service.Name,
		StaffID:         core.StaffID,
		ClientID:        core.ClientID,
		ClientName:      core.ClientName,
		ClientPhone:     core.ClientPhone,
		ClientEmail:     core.ClientEmail,
		StartAt:         core.StartAt.Format(time.RFC3339),
		EndAt:           endAt.Format(time.RFC3339),
		DurationMinutes: int(endAt.Sub(core.StartAt) / time.Minute),
	})
}

// loadUser загружает пользователя, транслируя "не найден" в notFoundErr
func (uc *UseCase) loadUser(ctx context.Context, id int64, notFoundErr error) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateAppointment: user id=%d not found", id)
			return nil, notFoundErr
		}
		uc.logger.Error("CreateAppointment: failed to get user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	return user, nil
}

// isSerializationFailure определяет проигрыш SERIALIZABLE транзакции
// (Postgres serialization_failure, код 40001)
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == "40001"
}

// emailOrNil нормализует email: обрезает пробелы, пустое значение - nil
func emailOrNil(email string) *string {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	return &email
}

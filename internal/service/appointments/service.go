package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	apptRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// Service сервис чтения записей: история клиента/сотрудника и публичный
// поиск по коду протокола
type Service struct {
	apptRepo AppointmentRepository
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		apptRepo: apptRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetByProtocol получает запись по коду протокола.
// Публичная операция: посетитель без аккаунта может проверить свою запись
// по коду, выданному при бронировании.
func (s *Service) GetByProtocol(ctx context.Context, protocol string) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByProtocol: fetching appointment protocol=%s", protocol)

	appt, err := s.apptRepo.GetByProtocol(ctx, protocol)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByProtocol: appointment protocol=%s not found", protocol)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByProtocol: repository error for protocol=%s: %v", protocol, err)
		return nil, fmt.Errorf("%w: GetByProtocol - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// ListClientAppointments возвращает историю записей клиента.
// Вызывающий видит только свои записи.
func (s *Service) ListClientAppointments(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	s.logger.Info("ListClientAppointments: fetching appointments for client=%d", req.CallerID)

	caller, err := s.loadCaller(ctx, req.CallerID)
	if err != nil {
		return nil, err
	}

	if !caller.IsActiveClient() {
		s.logger.Warn("ListClientAppointments: user=%d is not an active client", req.CallerID)
		return nil, ErrAccessDenied
	}

	return s.list(ctx, domain.AppointmentFilter{ClientID: &req.CallerID}, req)
}

// ListStaffAppointments возвращает календарь записей сотрудника.
// Вызывающий видит только свой календарь.
func (s *Service) ListStaffAppointments(ctx context.Context, req *models.ListRequest) (*models.ListResponse, error) {
	s.logger.Info("ListStaffAppointments: fetching appointments for staff=%d", req.CallerID)

	caller, err := s.loadCaller(ctx, req.CallerID)
	if err != nil {
		return nil, err
	}

	if !caller.IsBookableStaff() {
		s.logger.Warn("ListStaffAppointments: user=%d is not an active staff member", req.CallerID)
		return nil, ErrAccessDenied
	}

	return s.list(ctx, domain.AppointmentFilter{StaffID: &req.CallerID}, req)
}

func (s *Service) list(ctx context.Context, filter domain.AppointmentFilter, req *models.ListRequest) (*models.ListResponse, error) {
	statuses, err := models.ToDomainStatuses(req.Statuses)
	if err != nil {
		s.logger.Warn("list: invalid status filter for user=%d: %v", req.CallerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	filter.From = req.From
	filter.To = req.To
	filter.Statuses = statuses

	list, err := s.apptRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("list: repository error for user=%d: %v", req.CallerID, err)
		return nil, fmt.Errorf("%w: list - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("list: fetched %d appointments for user=%d", len(list), req.CallerID)
	return models.FromDomainAppointmentList(list), nil
}

func (s *Service) loadCaller(ctx context.Context, callerID int64) (*domain.User, error) {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("loadCaller: user=%d not found", callerID)
			return nil, ErrCallerNotFound
		}
		s.logger.Error("loadCaller: repository error for user=%d: %v", callerID, err)
		return nil, fmt.Errorf("%w: loadCaller - repository error: %v", ErrInternal, err)
	}
	return caller, nil
}

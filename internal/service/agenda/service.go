package agenda

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	blackoutRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/blackout"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SalonService/internal/service/agenda/models"
)

// Service self-service сотрудника: недельное расписание и блокировки.
// Вызывающий работает только со своими данными; его ID приходит явным
// параметром из HTTP слоя.
type Service struct {
	scheduleRepo ScheduleRepository
	blackoutRepo BlackoutRepository
	userRepo     UserRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	blackoutRepo BlackoutRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		blackoutRepo: blackoutRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// GetWeek возвращает недельное расписание сотрудника.
// Всегда возвращает 7 дней: дни без строки в БД считаются неактивными.
func (s *Service) GetWeek(ctx context.Context, callerID int64) (*models.WeekResponse, error) {
	if err := s.requireActiveStaff(ctx, callerID); err != nil {
		return nil, err
	}

	rows, err := s.scheduleRepo.GetWeek(ctx, callerID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for staff=%d: %v", callerID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	byWeekday := make(map[int]*domain.ScheduleDay, len(rows))
	for _, row := range rows {
		byWeekday[row.Weekday] = row
	}

	resp := &models.WeekResponse{Days: make([]models.ScheduleDay, 0, domain.WeekdayMax)}

	for weekday := domain.WeekdayMin; weekday <= domain.WeekdayMax; weekday++ {
		if row, ok := byWeekday[weekday]; ok {
			resp.Days = append(resp.Days, models.FromDomainScheduleDay(row))
		} else {
			resp.Days = append(resp.Days, models.ScheduleDay{Weekday: weekday, Active: false})
		}
	}

	return resp, nil
}

// UpdateWeek выполняет полное обновление недельного расписания.
// Требует ровно 7 дней (1..7); каждый день валидируется по правилам окон.
func (s *Service) UpdateWeek(ctx context.Context, req *models.UpdateWeekRequest) (*models.WeekResponse, error) {
	s.logger.Info("UpdateWeek: updating schedule for staff=%d", req.CallerID)

	if err := s.requireActiveStaff(ctx, req.CallerID); err != nil {
		return nil, err
	}

	if err := validateWeek(req.Days); err != nil {
		s.logger.Warn("UpdateWeek: validation failed for staff=%d: %v", req.CallerID, err)
		return nil, err
	}

	for _, day := range req.Days {
		if err := s.scheduleRepo.UpsertDay(ctx, day.ToDomainScheduleDay(req.CallerID)); err != nil {
			s.logger.Error("UpdateWeek: upsert failed for staff=%d weekday=%d: %v",
				req.CallerID, day.Weekday, err)
			return nil, fmt.Errorf("%w: UpdateWeek - upsert weekday %d: %v", ErrInternal, day.Weekday, err)
		}
	}

	s.logger.Info("UpdateWeek: schedule updated for staff=%d", req.CallerID)
	return s.GetWeek(ctx, req.CallerID)
}

// ListBlackouts возвращает все блокировки сотрудника
func (s *Service) ListBlackouts(ctx context.Context, callerID int64) ([]*models.BlackoutResponse, error) {
	if err := s.requireActiveStaff(ctx, callerID); err != nil {
		return nil, err
	}

	list, err := s.blackoutRepo.ListByStaff(ctx, callerID)
	if err != nil {
		s.logger.Error("ListBlackouts: repository error for staff=%d: %v", callerID, err)
		return nil, fmt.Errorf("%w: ListBlackouts - repository error: %v", ErrInternal, err)
	}

	resp := make([]*models.BlackoutResponse, len(list))
	for i, b := range list {
		resp[i] = models.FromDomainBlackout(b)
	}

	return resp, nil
}

// CreateBlackout создает блокировку сотрудника.
// Интервал полуоткрытый [StartAt, EndAt), StartAt строго меньше EndAt.
func (s *Service) CreateBlackout(ctx context.Context, req *models.CreateBlackoutRequest) (*models.BlackoutResponse, error) {
	s.logger.Info("CreateBlackout: staff=%d start=%s end=%s",
		req.CallerID, req.StartAt, req.EndAt)

	if err := s.requireActiveStaff(ctx, req.CallerID); err != nil {
		return nil, err
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return nil, fmt.Errorf("%w: startAt and endAt are required", ErrInvalidBlackout)
	}
	if !req.StartAt.Before(req.EndAt) {
		return nil, fmt.Errorf("%w: startAt must be before endAt", ErrInvalidBlackout)
	}

	created, err := s.blackoutRepo.Create(ctx, &domain.Blackout{
		StaffID: req.CallerID,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
		Reason:  req.Reason,
	})
	if err != nil {
		s.logger.Error("CreateBlackout: repository error for staff=%d: %v", req.CallerID, err)
		return nil, fmt.Errorf("%w: CreateBlackout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlackout: created blackout id=%d for staff=%d", created.ID, req.CallerID)
	return models.FromDomainBlackout(created), nil
}

// DeleteBlackout удаляет блокировку. Сотрудник может удалять только свои.
func (s *Service) DeleteBlackout(ctx context.Context, callerID, blackoutID int64) error {
	s.logger.Info("DeleteBlackout: staff=%d blackout=%d", callerID, blackoutID)

	if err := s.requireActiveStaff(ctx, callerID); err != nil {
		return err
	}

	b, err := s.blackoutRepo.GetByID(ctx, blackoutID)
	if err != nil {
		if errors.Is(err, blackoutRepo.ErrBlackoutNotFound) {
			s.logger.Warn("DeleteBlackout: blackout=%d not found", blackoutID)
			return ErrBlackoutNotFound
		}
		s.logger.Error("DeleteBlackout: repository error for blackout=%d: %v", blackoutID, err)
		return fmt.Errorf("%w: DeleteBlackout - repository error: %v", ErrInternal, err)
	}

	if b.StaffID != callerID {
		s.logger.Warn("DeleteBlackout: staff=%d attempted to delete foreign blackout=%d", callerID, blackoutID)
		return ErrAccessDenied
	}

	if err := s.blackoutRepo.Delete(ctx, blackoutID); err != nil {
		if errors.Is(err, blackoutRepo.ErrBlackoutNotFound) {
			return ErrBlackoutNotFound
		}
		s.logger.Error("DeleteBlackout: delete failed for blackout=%d: %v", blackoutID, err)
		return fmt.Errorf("%w: DeleteBlackout - repository error: %v", ErrInternal, err)
	}

	return nil
}

// requireActiveStaff проверяет, что вызывающий - активный сотрудник
func (s *Service) requireActiveStaff(ctx context.Context, callerID int64) error {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("requireActiveStaff: user=%d not found", callerID)
			return ErrStaffNotFound
		}
		s.logger.Error("requireActiveStaff: repository error for user=%d: %v", callerID, err)
		return fmt.Errorf("%w: requireActiveStaff - repository error: %v", ErrInternal, err)
	}

	if !caller.IsBookableStaff() {
		return ErrNotStaff
	}

	return nil
}

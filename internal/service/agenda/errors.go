package agenda

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("agenda.service: staff member not found")

	// ErrNotStaff возвращается, когда вызывающий не активный сотрудник
	ErrNotStaff = errors.New("agenda.service: caller is not an active staff member")

	// ErrBlackoutNotFound возвращается, когда блокировка не найдена
	ErrBlackoutNotFound = errors.New("agenda.service: blackout not found")

	// ErrAccessDenied возвращается при попытке изменить чужие данные
	ErrAccessDenied = errors.New("agenda.service: access denied")

	// ErrIncompleteWeek возвращается, когда обновление расписания не содержит
	// ровно 7 дней (1..7) без дубликатов
	ErrIncompleteWeek = errors.New("agenda.service: schedule update must contain exactly days 1..7")

	// ErrInvalidWindow возвращается при нарушении правил рабочих окон дня
	ErrInvalidWindow = errors.New("agenda.service: invalid working windows")

	// ErrInvalidBlackout возвращается при некорректном интервале блокировки
	ErrInvalidBlackout = errors.New("agenda.service: invalid blackout period")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("agenda.service: internal error")
)

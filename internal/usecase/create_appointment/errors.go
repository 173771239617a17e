package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = errors.New("client not found")

	// ErrServiceInactive возвращается, когда услуга неактивна
	ErrServiceInactive = errors.New("service is inactive")

	// ErrStaffNotBookable возвращается, когда пользователь неактивен или
	// не имеет роли сотрудника
	ErrStaffNotBookable = errors.New("user is not an active staff member")

	// ErrServiceNotEnabled возвращается, когда услуга не включена для сотрудника
	ErrServiceNotEnabled = errors.New("service is not enabled for this staff member")

	// ErrClientNotBookable возвращается, когда указанный клиент неактивен
	// или не имеет роли клиента
	ErrClientNotBookable = errors.New("user is not an active client")

	// ErrAccessDenied возвращается, когда вызывающий не подходит под вариант записи
	ErrAccessDenied = errors.New("access denied")

	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается
	// с существующей записью в блокирующем статусе
	ErrSlotConflict = errors.New("time slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrProtocolExhausted возвращается, когда генератор протоколов исчерпал
	// все попытки подобрать уникальный код
	ErrProtocolExhausted = errors.New("failed to generate a unique protocol code")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

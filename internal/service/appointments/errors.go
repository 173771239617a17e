package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments.service: appointment not found")

	// ErrCallerNotFound возвращается, когда вызывающий пользователь не найден
	ErrCallerNotFound = errors.New("appointments.service: caller not found")

	// ErrAccessDenied возвращается при недостаточных правах вызывающего
	ErrAccessDenied = errors.New("appointments.service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments.service: internal error")
)

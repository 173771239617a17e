package protocol

import "errors"

var (
	// ErrProtocolNotFound возвращается, когда протокол не найден
	ErrProtocolNotFound = errors.New("protocol.repository: protocol not found")

	// ErrDuplicateCode возвращается при нарушении уникальности кода
	ErrDuplicateCode = errors.New("protocol.repository: duplicate protocol code")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("protocol.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("protocol.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("protocol.repository: failed to scan row")
)

package staffprefs

import "errors"

var (
	// ErrPrefsNotFound возвращается, когда у сотрудника нет документа настроек
	ErrPrefsNotFound = errors.New("staffprefs.repository: prefs not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("staffprefs.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("staffprefs.repository: failed to execute query")
)

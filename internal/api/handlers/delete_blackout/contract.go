package delete_blackout

import "context"

type AgendaService interface {
	DeleteBlackout(ctx context.Context, callerID, blackoutID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

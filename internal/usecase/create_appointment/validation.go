package create_appointment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateCore валидирует общие поля всех вариантов записи
func validateCore(core *bookingCore) error {
	if core.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if core.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if core.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	// Walk-in без привязки к клиенту обязан иметь имя и телефон
	if core.ClientID == nil {
		if strings.TrimSpace(core.ClientName) == "" {
			return fmt.Errorf("%w: clientName is required for walk-in booking", ErrInvalidInput)
		}
		if strings.TrimSpace(core.ClientPhone) == "" {
			return fmt.Errorf("%w: clientPhone is required for walk-in booking", ErrInvalidInput)
		}
	}

	if core.Notes != nil && len(*core.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

package create_appointment

import (
	"context"
	"fmt"
	"math/rand"
)

// protocolSuffixSpace пространство случайного суффикса: 6 цифр с ведущими нулями
const protocolSuffixSpace = 1_000_000

// generateProtocol генерирует уникальный человекочитаемый код протокола
// вида PREFIX-YYYYMMDD-XXXXXX. Уникальность проверяется по ДВУМ хранилищам
// (протоколы и записи): исторически код мог оказаться в любом из них.
// После maxAttempts неудачных попыток бронирование завершается фатальной
// ошибкой; при суффиксе в миллион вариантов это практически недостижимо.
func (uc *UseCase) generateProtocol(ctx context.Context) (string, error) {
	datePart := uc.timeProvider.Now().Format("20060102")

	for attempt := 1; attempt <= uc.protocolMaxAttempts; attempt++ {
		code := fmt.Sprintf("%s-%s-%06d", uc.protocolPrefix, datePart, rand.Intn(protocolSuffixSpace))

		inProtocols, err := uc.protocolRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: failed to check protocol uniqueness: %v", ErrInternal, err)
		}
		if inProtocols {
			uc.logger.Warn("generateProtocol: collision in protocols on attempt %d: %s", attempt, code)
			continue
		}

		inAppointments, err := uc.appointmentRepo.ExistsByProtocol(ctx, code)
		if err != nil {
			return "", fmt.Errorf("%w: failed to check protocol uniqueness: %v", ErrInternal, err)
		}
		if inAppointments {
			uc.logger.Warn("generateProtocol: collision in appointments on attempt %d: %s", attempt, code)
			continue
		}

		return code, nil
	}

	uc.logger.Error("generateProtocol: exhausted %d attempts", uc.protocolMaxAttempts)
	return "", ErrProtocolExhausted
}

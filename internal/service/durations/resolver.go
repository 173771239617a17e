package durations

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	staffprefsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staffprefs"
)

// Resolver вычисляет эффективную длительность услуги для пары
// (сотрудник, услуга): персональный override из документа настроек
// имеет приоритет над длительностью из каталога.
//
// Формат документа: {"services": {"<serviceId>": {"durationMinutes": N}}}
type Resolver struct {
	prefsRepo PrefsRepository
	logger    Logger
}

// NewResolver создает новый резолвер длительностей
func NewResolver(prefsRepo PrefsRepository, logger Logger) *Resolver {
	return &Resolver{
		prefsRepo: prefsRepo,
		logger:    logger,
	}
}

// prefsDocument типизированная проекция документа настроек.
// Лишние ключи игнорируются.
type prefsDocument struct {
	Services map[string]servicePrefs `json:"services"`
}

type servicePrefs struct {
	DurationMinutes *int `json:"durationMinutes"`
}

// Resolve возвращает эффективную длительность услуги в минутах.
//
// Никогда не возвращает ошибку: отсутствующий документ, битый JSON,
// отсутствующий ключ услуги или неположительное значение - все это
// тихий fallback на fallbackMinutes. Испорченные настройки сотрудника
// не должны блокировать ни бронирование, ни расчет доступности.
func (r *Resolver) Resolve(ctx context.Context, staffID, serviceID int64, fallbackMinutes int) int {
	raw, err := r.prefsRepo.GetRaw(ctx, staffID)
	if err != nil {
		if !errors.Is(err, staffprefsRepo.ErrPrefsNotFound) {
			r.logger.Warn("Resolve: failed to load prefs for staff=%d, using fallback=%d: %v",
				staffID, fallbackMinutes, err)
		}
		return fallbackMinutes
	}

	if len(raw) == 0 {
		return fallbackMinutes
	}

	var doc prefsDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		r.logger.Warn("Resolve: malformed prefs document for staff=%d, using fallback=%d: %v",
			staffID, fallbackMinutes, err)
		return fallbackMinutes
	}

	prefs, ok := doc.Services[strconv.FormatInt(serviceID, 10)]
	if !ok || prefs.DurationMinutes == nil {
		return fallbackMinutes
	}

	if *prefs.DurationMinutes < 1 {
		r.logger.Warn("Resolve: non-positive duration override for staff=%d service=%d, using fallback=%d",
			staffID, serviceID, fallbackMinutes)
		return fallbackMinutes
	}

	r.logger.Debug("Resolve: staff=%d service=%d override=%d", staffID, serviceID, *prefs.DurationMinutes)
	return *prefs.DurationMinutes
}

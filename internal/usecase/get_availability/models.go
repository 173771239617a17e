package get_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на расчет доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	StaffID   int64     // ID сотрудника
	Date      time.Time // Дата для расчета слотов (без времени)
}

// Response модель ответа со списком доступных слотов.
// Пустой список слотов - валидный результат ("в этот день записаться нельзя"),
// а не ошибка.
type Response struct {
	Date                    time.Time          // Дата, на которую запрашивались слоты
	ServiceID               int64              // ID услуги
	StaffID                 int64              // ID сотрудника
	ResolvedDurationMinutes int                // Эффективная длительность услуги у этого сотрудника
	Slots                   []types.TimeString // Времена начала доступных слотов
}

func emptyResponse(req *Request, duration int) *Response {
	return &Response{
		Date:                    req.Date,
		ServiceID:               req.ServiceID,
		StaffID:                 req.StaffID,
		ResolvedDurationMinutes: duration,
		Slots:                   []types.TimeString{},
	}
}

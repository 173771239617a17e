package create_appointment

import "time"

// PublicRequest запрос анонимной/публичной записи.
// Посетитель без аккаунта: имя и телефон обязательны, связь с клиентом
// не создается.
type PublicRequest struct {
	ServiceID   int64
	StaffID     int64
	ClientName  string
	ClientPhone string
	ClientEmail *string
	StartAt     time.Time
	Notes       *string
}

// ClientRequest запрос self-service записи.
// Личность всегда берется из записи самого вызывающего; вызывающий должен
// быть активным клиентом.
type ClientRequest struct {
	CallerID  int64
	ServiceID int64
	StaffID   int64
	StartAt   time.Time
	Notes     *string
}

// StaffRequest запрос записи, создаваемой сотрудником.
// Либо ссылка на существующего клиента (ClientID), либо walk-in с
// обязательными именем и телефоном.
type StaffRequest struct {
	CallerID    int64
	ServiceID   int64
	StaffID     int64
	ClientID    *int64
	ClientName  *string
	ClientPhone *string
	ClientEmail *string
	StartAt     time.Time
	Notes       *string
}

// Response модель созданной записи
type Response struct {
	ID          int64
	Protocol    string
	ServiceID   int64
	StaffID     int64
	ClientID    *int64
	ClientName  string
	ClientPhone string
	ClientEmail *string
	StartAt     time.Time
	EndAt       time.Time
	Status      string
	Notes       *string
	CreatedAt   time.Time
}

// bookingCore внутренняя модель общего ядра бронирования: три входных
// варианта отличаются только способом получения личности клиента
type bookingCore struct {
	ServiceID   int64
	StaffID     int64
	ClientID    *int64
	ClientName  string
	ClientPhone string
	ClientEmail *string
	StartAt     time.Time
	Notes       *string
}

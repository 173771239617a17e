package domain

import (
	"encoding/json"
	"time"
)

// ProtocolKindAppointment категория протокола для записей на услугу
const ProtocolKindAppointment = "appointment"

// ProtocolRecord is an append-only audit record created in the same
// transaction as the appointment it references. The code is the same
// human-readable reference stored on the appointment.
type ProtocolRecord struct {
	ID        int64
	Code      string
	Kind      string
	Payload   json.RawMessage
	CreatedAt time.Time
}

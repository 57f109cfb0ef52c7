package cancel_booking

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// Request модель запроса на отмену записи
type Request struct {
	Caller        domain.Caller
	AppointmentID int64
}

// Response модель ответа с данными отменённой записи
type Response struct {
	ID          int64
	ClientEmail string
	StartsAt    time.Time
}

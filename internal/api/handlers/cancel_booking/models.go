package cancel_booking

import (
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	cancelBooking "github.com/m04kA/SMC-SlotBooking/internal/usecase/cancel_booking"
)

// CancelledResponse HTTP response model
type CancelledResponse struct {
	ID          int64  `json:"id"`
	ClientEmail string `json:"clientEmail"`
	StartsAt    string `json:"startsAt"`
}

// ToUseCaseRequest формирует запрос use case
func ToUseCaseRequest(caller domain.Caller, id int64) *cancelBooking.Request {
	return &cancelBooking.Request{
		Caller:        caller,
		AppointmentID: id,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelledResponse {
	return &CancelledResponse{
		ID:          resp.ID,
		ClientEmail: resp.ClientEmail,
		StartsAt:    resp.StartsAt.Format(domain.DateTimeFormat),
	}
}

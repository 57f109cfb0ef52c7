package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-SlotBooking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	StartsAt string `json:"startsAt"` // "2026-10-19 09:30"

	// Используются только когда записывает исполнитель
	ClientName  string `json:"clientName,omitempty"`
	ClientEmail string `json:"clientEmail,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	StartsAt    string `json:"startsAt"`
	Paid        bool   `json:"paid"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(caller domain.Caller) (*createBooking.Request, error) {
	startsAt, err := domain.ParseDateTime(r.StartsAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Caller:      caller,
		StartsAt:    startsAt,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ClientName:  resp.ClientName,
		ClientEmail: resp.ClientEmail,
		StartsAt:    resp.StartsAt.Format(domain.DateTimeFormat),
		Paid:        resp.Paid,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}

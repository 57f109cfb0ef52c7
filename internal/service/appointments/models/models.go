package models

import (
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// AppointmentResponse запись в списке
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	ClientName  string    `json:"clientName"`
	ClientEmail string    `json:"clientEmail"`
	StartsAt    time.Time `json:"startsAt"`
	Paid        bool      `json:"paid"`
	// Cancellable может ли вызывающий отменить запись прямо сейчас
	Cancellable bool      `json:"cancellable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CancellableResponse результат проверки возможности отмены
type CancellableResponse struct {
	AppointmentID     int64         `json:"appointmentId"`
	Cancellable       bool          `json:"cancellable"`
	TimeUntilStart    time.Duration `json:"-"`
	MinutesUntilStart int64         `json:"minutesUntilStart"` // отрицательное значение - запись уже началась
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment, role domain.Role, now time.Time) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ClientEmail: a.ClientEmail,
		StartsAt:    a.StartsAt,
		Paid:        a.Paid,
		Cancellable: a.CanBeCancelledBy(role, now),
		CreatedAt:   a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список записей
func FromDomainAppointmentList(list []*domain.Appointment, role domain.Role, now time.Time) *AppointmentListResponse {
	resp := &AppointmentListResponse{Appointments: make([]AppointmentResponse, 0, len(list))}
	for _, a := range list {
		resp.Appointments = append(resp.Appointments, FromDomainAppointment(a, role, now))
	}
	return resp
}

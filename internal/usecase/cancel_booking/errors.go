package cancel_booking

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("cancel_booking: appointment not found")

	// ErrPolicyViolation возвращается, когда до начала приёма осталось меньше допустимого
	ErrPolicyViolation = errors.New("cancel_booking: cancellation window has passed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)

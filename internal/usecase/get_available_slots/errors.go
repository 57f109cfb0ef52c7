package get_available_slots

import "errors"

var (
	// ErrUnconfigured возвращается, когда поставщик ещё не настроил расписание
	ErrUnconfigured = errors.New("get_available_slots: schedule is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)

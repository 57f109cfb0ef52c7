package create_booking

import "errors"

var (
	// ErrSlotTaken возвращается, когда на это время уже есть запись
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrSlotNotOffered возвращается, когда время не входит в сгенерированные слоты
	ErrSlotNotOffered = errors.New("create_booking: time is not an offered slot")

	// ErrUnconfigured возвращается, когда поставщик ещё не настроил расписание
	ErrUnconfigured = errors.New("create_booking: schedule is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

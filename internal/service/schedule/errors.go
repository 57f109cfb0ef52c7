package schedule

import "errors"

var (
	// ErrUnconfigured возвращается, когда конфигурация не сохранена, а значения по умолчанию отключены
	ErrUnconfigured = errors.New("schedule: provider configuration is missing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)

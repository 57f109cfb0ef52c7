package schedule

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация расписания ещё не сохранена
	ErrConfigNotFound = errors.New("schedule.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrInvalidWeekdays возвращается, если в БД лежит некорректный номер дня недели
	ErrInvalidWeekdays = errors.New("schedule.repository: invalid non-working weekdays")
)

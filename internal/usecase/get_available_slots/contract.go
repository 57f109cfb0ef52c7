package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// ConfigProvider источник действующей конфигурации расписания
type ConfigProvider interface {
	Current(ctx context.Context) (*domain.ScheduleConfig, error)
}

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	// ListReservedBetween возвращает занятые моменты времени в интервале [from, to)
	ListReservedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics метрики выдачи слотов
type Metrics interface {
	ObserveSlots(count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

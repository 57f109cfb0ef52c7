package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	// Create атомарно резервирует слот, ErrSlotTaken если время уже занято
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// ConfigProvider источник действующей конфигурации расписания
type ConfigProvider interface {
	Current(ctx context.Context) (*domain.ScheduleConfig, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics счётчики попыток бронирования
type Metrics interface {
	IncBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

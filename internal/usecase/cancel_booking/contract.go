package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// AppointmentRepository интерфейс журнала записей
type AppointmentRepository interface {
	// GetByID внутри транзакции блокирует запись до её завершения
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics счётчики попыток отмены
type Metrics interface {
	IncCancellation(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package schedule

import (
	"context"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// ConfigRepository интерфейс хранилища конфигурации расписания
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.ScheduleConfig, error)
	Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	CreateIfNotExists(ctx context.Context, config *domain.ScheduleConfig) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

// AccountResolver источник аккаунтов для определения вызывающего
type AccountResolver interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type Metrics interface {
	ObserveHTTP(method, path string, status int, duration time.Duration)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

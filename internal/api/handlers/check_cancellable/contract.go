package check_cancellable

import (
	"context"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/service/appointments/models"
)

type AppointmentService interface {
	Cancellable(ctx context.Context, caller domain.Caller, id int64) (*models.CancellableResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SlotBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
	"github.com/m04kA/SMC-SlotBooking/pkg/metrics"
)

// UseCase use case для отмены записи
// Отмена = удаление записи, слот снова становится свободным
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case отмены
// Чтение, проверка политики и удаление выполняются в одной транзакции:
// из двух одновременных отмен одной записи успешна одна, вторая получает ErrAppointmentNotFound
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: appointment id=%d, caller=%s, role=%s",
		req.AppointmentID, req.Caller.Email, req.Caller.Role)

	// 1. Проверяем права доступа
	if err := access.Authorize(req.Caller, domain.RoleClient, domain.RoleProvider); err != nil {
		uc.logger.Warn("CancelBooking: access denied for %s (role=%s)", req.Caller.Email, req.Caller.Role)
		uc.metrics.IncCancellation(metrics.ResultUnauthorized)
		return nil, err
	}

	if req.AppointmentID <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	var result *domain.Appointment

	// 2. Выполняем операции с журналом в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем запись с блокировкой
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Клиент может отменить только свою запись
		if !req.Caller.IsProvider() && !appointment.BelongsTo(req.Caller.Email) {
			return fmt.Errorf("%w: appointment belongs to another client", access.ErrUnauthorized)
		}

		// 2.3. Проверяем политику отмены до удаления
		now := uc.timeProvider.Now()
		if !appointment.CanBeCancelledBy(req.Caller.Role, now) {
			return fmt.Errorf("%w: %s left until start, at least %s required",
				ErrPolicyViolation, appointment.TimeUntilStart(now), domain.CancellationWindow)
		}

		// 2.4. Удаляем запись
		if err := uc.appointmentRepo.Delete(txCtx, appointment.ID); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to delete appointment: %v", ErrInternal, err)
		}

		result = appointment
		return nil
	})

	if err != nil {
		uc.logResult(req, err)
		return nil, err
	}

	uc.metrics.IncCancellation(metrics.ResultCancelled)
	uc.logger.Info("CancelBooking: successfully cancelled appointment id=%d at %s",
		result.ID, result.StartsAt.Format(domain.DateTimeFormat))

	return &Response{
		ID:          result.ID,
		ClientEmail: result.ClientEmail,
		StartsAt:    result.StartsAt,
	}, nil
}

func (uc *UseCase) logResult(req *Request, err error) {
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		uc.logger.Warn("CancelBooking: appointment id=%d not found", req.AppointmentID)
		uc.metrics.IncCancellation(metrics.ResultNotFound)
	case errors.Is(err, access.ErrUnauthorized):
		uc.logger.Warn("CancelBooking: %s is not the owner of appointment id=%d", req.Caller.Email, req.AppointmentID)
		uc.metrics.IncCancellation(metrics.ResultUnauthorized)
	case errors.Is(err, ErrPolicyViolation):
		uc.logger.Warn("CancelBooking: policy violation for appointment id=%d: %v", req.AppointmentID, err)
		uc.metrics.IncCancellation(metrics.ResultPolicyViolation)
	default:
		uc.logger.Error("CancelBooking: failed to cancel appointment id=%d: %v", req.AppointmentID, err)
		uc.metrics.IncCancellation(metrics.ResultError)
	}
}

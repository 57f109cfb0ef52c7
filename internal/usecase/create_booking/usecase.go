package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SlotBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
	"github.com/m04kA/SMC-SlotBooking/internal/service/schedule"
	"github.com/m04kA/SMC-SlotBooking/internal/service/slots"
	"github.com/m04kA/SMC-SlotBooking/pkg/metrics"
)

// UseCase use case для записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	configProvider  ConfigProvider
	timeProvider    TimeProvider
	metrics         Metrics
	strictSlots     bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// strictSlots = true: записаться можно только на время, которое выдает генератор слотов
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configProvider ConfigProvider,
	timeProvider TimeProvider,
	metrics Metrics,
	strictSlots bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configProvider:  configProvider,
		timeProvider:    timeProvider,
		metrics:         metrics,
		strictSlots:     strictSlots,
		logger:          logger,
	}
}

// Execute выполняет use case записи
// Повторная попытка при занятом слоте не выполняется, ErrSlotTaken возвращается вызывающему
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: caller=%s, role=%s, startsAt=%s",
		req.Caller.Email, req.Caller.Role, req.StartsAt.Format(domain.DateTimeFormat))

	// 1. Проверяем права доступа
	if err := access.Authorize(req.Caller, domain.RoleClient, domain.RoleProvider); err != nil {
		uc.logger.Warn("CreateBooking: access denied for %s (role=%s)", req.Caller.Email, req.Caller.Role)
		uc.metrics.IncBooking(metrics.ResultUnauthorized)
		return nil, err
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBooking(metrics.ResultRejected)
		return nil, err
	}

	name, email, err := resolveClient(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBooking(metrics.ResultRejected)
		return nil, err
	}

	startsAt := domain.Naive(req.StartsAt.Truncate(time.Second))

	// 3. Проверяем, что время входит в предлагаемые слоты
	if uc.strictSlots {
		if err := uc.checkOffered(ctx, startsAt); err != nil {
			return nil, err
		}
	}

	// 4. Резервируем слот
	created, err := uc.appointmentRepo.Create(ctx, &domain.Appointment{
		ClientName:  name,
		ClientEmail: email,
		StartsAt:    startsAt,
		Paid:        false,
	})
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateBooking: slot %s already taken", startsAt.Format(domain.DateTimeFormat))
			uc.metrics.IncBooking(metrics.ResultSlotTaken)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateBooking: failed to reserve slot %s: %v", startsAt.Format(domain.DateTimeFormat), err)
		uc.metrics.IncBooking(metrics.ResultError)
		return nil, fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
	}

	uc.metrics.IncBooking(metrics.ResultReserved)
	uc.logger.Info("CreateBooking: successfully created appointment id=%d for %s at %s",
		created.ID, created.ClientEmail, created.StartsAt.Format(domain.DateTimeFormat))

	return &Response{
		ID:          created.ID,
		ClientName:  created.ClientName,
		ClientEmail: created.ClientEmail,
		StartsAt:    created.StartsAt,
		Paid:        created.Paid,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// checkOffered проверяет startsAt по текущей конфигурации
func (uc *UseCase) checkOffered(ctx context.Context, startsAt time.Time) error {
	config, err := uc.configProvider.Current(ctx)
	if err != nil {
		uc.metrics.IncBooking(metrics.ResultError)
		if errors.Is(err, schedule.ErrUnconfigured) {
			uc.logger.Warn("CreateBooking: schedule is not configured")
			return ErrUnconfigured
		}
		uc.logger.Error("CreateBooking: failed to get config: %v", err)
		return fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	today := domain.StartOfDay(uc.timeProvider.Now())
	if !slots.Contains(config, today, startsAt) {
		uc.logger.Warn("CreateBooking: %s is not an offered slot", startsAt.Format(domain.DateTimeFormat))
		uc.metrics.IncBooking(metrics.ResultRejected)
		return fmt.Errorf("%w: %s", ErrSlotNotOffered, startsAt.Format(domain.DateTimeFormat))
	}

	return nil
}

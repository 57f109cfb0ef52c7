package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/service/schedule"
	"github.com/m04kA/SMC-SlotBooking/internal/service/slots"
)

// UseCase use case для получения свободных слотов на весь горизонт бронирования
type UseCase struct {
	configProvider  ConfigProvider
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	configProvider ConfigProvider,
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		configProvider:  configProvider,
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Слоты пересчитываются при каждом запросе и нигде не хранятся
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 1. Определяем сегодняшний день
	today := domain.StartOfDay(uc.timeProvider.Now())

	// 2. Получаем конфигурацию
	config, err := uc.configProvider.Current(ctx)
	if err != nil {
		if errors.Is(err, schedule.ErrUnconfigured) {
			uc.logger.Warn("GetAvailableSlots: schedule is not configured")
			return nil, ErrUnconfigured
		}
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	lastDay := config.LastDay(today)

	// 3. Получаем занятые моменты в пределах горизонта
	reserved, err := uc.appointmentRepo.ListReservedBetween(ctx, today, lastDay.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reserved slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get reserved slots: %v", ErrInternal, err)
	}

	// 4. Генерируем все слоты и исключаем занятые
	available := slots.ExcludeReserved(slots.Generate(config, today), reserved)

	resp := &Response{
		From:                today,
		To:                  lastDay,
		SlotDurationMinutes: config.SlotDurationMinutes,
		Slots:               make([]Slot, 0, len(available)),
	}

	for _, slot := range available {
		if req.Date != nil && !slot.Date.Equal(domain.StartOfDay(domain.Naive(*req.Date))) {
			continue
		}
		resp.Slots = append(resp.Slots, Slot{
			Date:      slot.Date,
			StartTime: slot.Time,
			StartsAt:  slot.StartsAt(),
		})
	}

	uc.metrics.ObserveSlots(len(resp.Slots))
	uc.logger.Info("GetAvailableSlots: %s..%s, %d reserved, %d available",
		today.Format(domain.DateFormat), lastDay.Format(domain.DateFormat), len(reserved), len(resp.Slots))

	return resp, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
	}
	return nil
}

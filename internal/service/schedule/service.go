package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SlotBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
	"github.com/m04kA/SMC-SlotBooking/internal/service/schedule/models"
)

// Service сервис конфигурации расписания поставщика
type Service struct {
	configRepo      ConfigRepository
	defaultFallback bool
	logger          Logger
}

// NewService создает новый экземпляр сервиса конфигурации
// defaultFallback = true: пока конфигурация не сохранена, используются значения по умолчанию
func NewService(configRepo ConfigRepository, defaultFallback bool, logger Logger) *Service {
	return &Service{
		configRepo:      configRepo,
		defaultFallback: defaultFallback,
		logger:          logger,
	}
}

// Current возвращает действующую конфигурацию
// Используется генератором слотов и бронированием
func (s *Service) Current(ctx context.Context) (*domain.ScheduleConfig, error) {
	config, err := s.configRepo.Get(ctx)
	if err == nil {
		return config, nil
	}

	if !errors.Is(err, scheduleRepo.ErrConfigNotFound) {
		s.logger.Error("Current: repository error: %v", err)
		return nil, fmt.Errorf("%w: Current - repository error: %v", ErrInternal, err)
	}

	if !s.defaultFallback {
		s.logger.Warn("Current: config is not saved and default fallback is disabled")
		return nil, ErrUnconfigured
	}

	return domain.DefaultScheduleConfig(), nil
}

// EnsureDefault сохраняет конфигурацию по умолчанию, если её ещё нет, и возвращает сохранённую
func (s *Service) EnsureDefault(ctx context.Context) (*domain.ScheduleConfig, error) {
	if err := s.configRepo.CreateIfNotExists(ctx, domain.DefaultScheduleConfig()); err != nil {
		s.logger.Error("EnsureDefault: failed to create default config: %v", err)
		return nil, fmt.Errorf("%w: EnsureDefault - repository error: %v", ErrInternal, err)
	}

	config, err := s.configRepo.Get(ctx)
	if err != nil {
		s.logger.Error("EnsureDefault: failed to read config: %v", err)
		return nil, fmt.Errorf("%w: EnsureDefault - repository error: %v", ErrInternal, err)
	}

	return config, nil
}

// Get возвращает конфигурацию для отображения
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	config, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(config), nil
}

// Update обновляет конфигурацию
// Доступно только поставщику
func (s *Service) Update(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating schedule config by %s", req.Caller.Email)

	// 1. Проверяем права доступа
	if err := access.Authorize(req.Caller, domain.RoleProvider); err != nil {
		s.logger.Warn("Update: access denied for %s (role=%s)", req.Caller.Email, req.Caller.Role)
		return nil, err
	}

	// 2. Получаем текущую конфигурацию, при первом обращении сохраняем значения по умолчанию
	config, err := s.EnsureDefault(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Применяем изменения к копии и валидируем
	updated := *config
	if err := req.ApplyToConfig(&updated); err != nil {
		s.logger.Warn("Update: invalid weekdays: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateConfig(&updated); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 4. Сохраняем
	saved, err := s.configRepo.Upsert(ctx, &updated)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: schedule config saved: non_working=%v, horizon=%d, hours=%s-%s, duration=%d",
		saved.NonWorkingWeekdays.Ints(), saved.HorizonDays, saved.OpenTime, saved.CloseTime, saved.SlotDurationMinutes)
	return models.FromDomainConfig(saved), nil
}

// validateConfig проверяет инварианты конфигурации
func validateConfig(config *domain.ScheduleConfig) error {
	if err := config.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
	}

	if err := config.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
	}

	if !config.OpenTime.IsBefore(config.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if config.SlotDurationMinutes < domain.MinSlotDurationMinutes || config.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slotDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if config.HorizonDays < domain.MinHorizonDays || config.HorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: horizonDays must be between %d and %d",
			ErrInvalidInput, domain.MinHorizonDays, domain.MaxHorizonDays)
	}

	return nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/schedule"
)

// ScheduleStore хранит единственную конфигурацию расписания
type ScheduleStore struct {
	mu     sync.RWMutex
	config *domain.ScheduleConfig
	now    func() time.Time
}

func NewScheduleStore() *ScheduleStore {
	return &ScheduleStore{now: time.Now}
}

// Get возвращает копию конфигурации или schedule.ErrConfigNotFound
func (s *ScheduleStore) Get(_ context.Context) (*domain.ScheduleConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.config == nil {
		return nil, schedule.ErrConfigNotFound
	}
	result := *s.config
	return &result, nil
}

// Upsert перезаписывает конфигурацию
func (s *ScheduleStore) Upsert(_ context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	stored := *config
	stored.ID = domain.ScheduleConfigID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if s.config != nil {
		stored.CreatedAt = s.config.CreatedAt
	}
	s.config = &stored

	result := stored
	return &result, nil
}

// CreateIfNotExists сохраняет конфигурацию, только если её ещё нет
func (s *ScheduleStore) CreateIfNotExists(_ context.Context, config *domain.ScheduleConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.config != nil {
		return nil
	}

	now := s.now()
	stored := *config
	stored.ID = domain.ScheduleConfigID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.config = &stored
	return nil
}

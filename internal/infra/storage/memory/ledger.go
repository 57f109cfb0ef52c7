package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/appointment"
)

// Ledger хранит записи в памяти процесса
// Проверка занятости и вставка выполняются под одним мьютексом, поэтому
// из конкурентных резервирований одного слота успешно ровно одно
type Ledger struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*domain.Appointment
	bySlot map[int64]int64
	now    func() time.Time
}

// NewLedger создает пустой журнал записей
func NewLedger() *Ledger {
	return &Ledger{
		byID:   make(map[int64]*domain.Appointment),
		bySlot: make(map[int64]int64),
		now:    time.Now,
	}
}

// Create резервирует слот или возвращает appointment.ErrSlotTaken
func (l *Ledger) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	startsAt := domain.Naive(a.StartsAt)
	key := domain.SlotKey(startsAt)

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, taken := l.bySlot[key]; taken {
		return nil, fmt.Errorf("%w: starts_at=%s", appointment.ErrSlotTaken, startsAt.Format(domain.DateTimeFormat))
	}

	l.nextID++
	stored := *a
	stored.ID = l.nextID
	stored.StartsAt = startsAt
	stored.CreatedAt = l.now()

	l.byID[stored.ID] = &stored
	l.bySlot[key] = stored.ID

	result := stored
	return &result, nil
}

// GetByID возвращает копию записи
func (l *Ledger) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stored, ok := l.byID[id]
	if !ok {
		return nil, appointment.ErrAppointmentNotFound
	}
	result := *stored
	return &result, nil
}

// List возвращает все записи по возрастанию времени начала
func (l *Ledger) List(_ context.Context) ([]*domain.Appointment, error) {
	return l.filter(func(*domain.Appointment) bool { return true }), nil
}

// ListByClientEmail возвращает записи клиента
func (l *Ledger) ListByClientEmail(_ context.Context, email string) ([]*domain.Appointment, error) {
	email = strings.TrimSpace(email)
	return l.filter(func(a *domain.Appointment) bool { return a.BelongsTo(email) }), nil
}

// ListReservedBetween возвращает занятые моменты времени в интервале [from, to)
func (l *Ledger) ListReservedBetween(_ context.Context, from, to time.Time) ([]time.Time, error) {
	from, to = domain.Naive(from), domain.Naive(to)

	inRange := l.filter(func(a *domain.Appointment) bool {
		return !a.StartsAt.Before(from) && a.StartsAt.Before(to)
	})

	reserved := make([]time.Time, len(inRange))
	for i, a := range inRange {
		reserved[i] = a.StartsAt
	}
	return reserved, nil
}

// Delete удаляет запись
func (l *Ledger) Delete(_ context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored, ok := l.byID[id]
	if !ok {
		return appointment.ErrAppointmentNotFound
	}

	delete(l.bySlot, domain.SlotKey(stored.StartsAt))
	delete(l.byID, id)
	return nil
}

func (l *Ledger) filter(keep func(*domain.Appointment) bool) []*domain.Appointment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make([]*domain.Appointment, 0, len(l.byID))
	for _, stored := range l.byID {
		if keep(stored) {
			copied := *stored
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].StartsAt.Before(result[j].StartsAt)
	})
	return result
}

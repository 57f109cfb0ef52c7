package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/account"
)

// AccountStore справочник аккаунтов в памяти, ключ - email в нижнем регистре
type AccountStore struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[string]*domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]*domain.Account)}
}

// GetByEmail ищет аккаунт по email без учета регистра
func (s *AccountStore) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.accounts[normalizeEmail(email)]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	result := *stored
	return &result, nil
}

// Upsert добавляет аккаунт или обновляет имя и роль существующего
func (s *AccountStore) Upsert(_ context.Context, a *domain.Account) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := normalizeEmail(a.Email)
	stored, ok := s.accounts[key]
	if !ok {
		s.nextID++
		stored = &domain.Account{ID: s.nextID, Email: key}
		s.accounts[key] = stored
	}
	stored.Name = a.Name
	stored.Role = a.Role

	result := *stored
	return &result, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

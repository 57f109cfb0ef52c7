package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotBooking/pkg/psqlbuilder"
)

// Repository справочник аккаунтов
// Сервис только читает его, запись идёт из cmd при заполнении из конфигурации
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail ищет аккаунт по email без учета регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "role").
		From("accounts").
		Where(squirrel.Eq{"LOWER(email)": strings.ToLower(strings.TrimSpace(email))}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var account domain.Account
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Role,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan account: %v", ErrScanRow, err)
	}

	return &account, nil
}

// Upsert добавляет аккаунт или обновляет имя и роль существующего
// Используется при заполнении справочника из конфигурации. Email хранится в нижнем регистре
func (r *Repository) Upsert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	saved := *account
	saved.Email = strings.ToLower(strings.TrimSpace(account.Email))

	query, args, err := psqlbuilder.Insert("accounts").
		Columns("name", "email", "role").
		Values(saved.Name, saved.Email, string(saved.Role)).
		Suffix("ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&saved.ID); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrScanRow, err)
	}

	return &saved, nil
}

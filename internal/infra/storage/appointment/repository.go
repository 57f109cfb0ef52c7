package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotBooking/pkg/psqlbuilder"
)

const (
	table = "appointments"

	// uniqueViolation код ошибки PostgreSQL для нарушения UNIQUE
	uniqueViolation = "23505"
)

var columns = []string{
	"id",
	"client_name",
	"client_email",
	"starts_at",
	"paid",
	"created_at",
}

// Repository репозиторий для работы с записями на приём
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create резервирует слот
// Атомарность обеспечивает ограничение UNIQUE (starts_at): из двух конкурентных
// вставок на одно время успешна только одна, вторая получает ErrSlotTaken
func (r *Repository) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	startsAt := domain.Naive(appointment.StartsAt)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"client_name",
			"client_email",
			"starts_at",
			"paid",
		).
		Values(
			appointment.ClientName,
			appointment.ClientEmail,
			startsAt,
			appointment.Paid,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appointment.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: starts_at=%s", ErrSlotTaken, startsAt.Format(domain.DateTimeFormat))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appointment.StartsAt = startsAt
	appointment.CreatedAt = createdAt.Time

	return appointment, nil
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до конца транзакции
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appointment, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appointment, nil
}

// List возвращает все записи по возрастанию времени начала
func (r *Repository) List(ctx context.Context) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("starts_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "List", query, args)
}

// ListByClientEmail возвращает записи клиента (email без учета регистра)
func (r *Repository) ListByClientEmail(ctx context.Context, email string) ([]*domain.Appointment, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"LOWER(client_email)": strings.ToLower(strings.TrimSpace(email))}).
		OrderBy("starts_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByClientEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListByClientEmail", query, args)
}

// ListReservedBetween возвращает занятые моменты времени в интервале [from, to)
func (r *Repository) ListReservedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("starts_at").
		From(table).
		Where(squirrel.GtOrEq{"starts_at": domain.Naive(from)}).
		Where(squirrel.Lt{"starts_at": domain.Naive(to)}).
		OrderBy("starts_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListReservedBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListReservedBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reserved := make([]time.Time, 0)
	for rows.Next() {
		var startsAt time.Time
		if err := rows.Scan(&startsAt); err != nil {
			return nil, fmt.Errorf("%w: ListReservedBetween - scan starts_at: %v", ErrScanRow, err)
		}
		reserved = append(reserved, domain.Naive(startsAt))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListReservedBetween - rows error: %v", ErrScanRow, err)
	}

	return reserved, nil
}

// Delete удаляет запись (отмена записи = удаление)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var appointment domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appointment.ID,
		&appointment.ClientName,
		&appointment.ClientEmail,
		&appointment.StartsAt,
		&appointment.Paid,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	appointment.StartsAt = domain.Naive(appointment.StartsAt)
	appointment.CreatedAt = createdAt.Time

	return &appointment, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

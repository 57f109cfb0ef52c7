package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotBooking/pkg/psqlbuilder"
)

const table = "schedule_config"

// Repository репозиторий конфигурации расписания
// В таблице всегда не больше одной строки (id = domain.ScheduleConfigID)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает текущую конфигурацию
// Возвращает ErrConfigNotFound, если конфигурация ещё не сохранялась
func (r *Repository) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"non_working_weekdays",
		"horizon_days",
		"open_time",
		"close_time",
		"slot_duration_minutes",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"id": domain.ScheduleConfigID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.ScheduleConfig
	var weekdays []int64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		pq.Array(&weekdays),
		&config.HorizonDays,
		&config.OpenTime,
		&config.CloseTime,
		&config.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	set, err := toWeekdaySet(weekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrInvalidWeekdays, err)
	}

	config.NonWorkingWeekdays = set
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// Upsert сохраняет конфигурацию, перезаписывая существующую
func (r *Repository) Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertBuilder(config).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			non_working_weekdays = EXCLUDED.non_working_weekdays,
			horizon_days = EXCLUDED.horizon_days,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	config.ID = domain.ScheduleConfigID
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// CreateIfNotExists сохраняет конфигурацию, только если её ещё нет
// Повторный и конкурентный вызов безопасен
func (r *Repository) CreateIfNotExists(ctx context.Context, config *domain.ScheduleConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertBuilder(config).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateIfNotExists - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateIfNotExists - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func insertBuilder(config *domain.ScheduleConfig) squirrel.InsertBuilder {
	return psqlbuilder.Insert(table).
		Columns(
			"id",
			"non_working_weekdays",
			"horizon_days",
			"open_time",
			"close_time",
			"slot_duration_minutes",
		).
		Values(
			domain.ScheduleConfigID,
			pq.Array(toInt64s(config.NonWorkingWeekdays)),
			config.HorizonDays,
			config.OpenTime,
			config.CloseTime,
			config.SlotDurationMinutes,
		)
}

func toInt64s(set domain.WeekdaySet) []int64 {
	days := set.Ints()
	out := make([]int64, len(days))
	for i, d := range days {
		out[i] = int64(d)
	}
	return out
}

func toWeekdaySet(days []int64) (domain.WeekdaySet, error) {
	ints := make([]int, len(days))
	for i, d := range days {
		ints[i] = int(d)
	}
	return domain.NewWeekdaySet(ints...)
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SlotBooking/internal/config"
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	accountRepo "github.com/m04kA/SMC-SlotBooking/internal/infra/storage/account"
	appointmentRepo "github.com/m04kA/SMC-SlotBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/memory"
	scheduleRepo "github.com/m04kA/SMC-SlotBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/schema"
	"github.com/m04kA/SMC-SlotBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
	"github.com/m04kA/SMC-SlotBooking/pkg/metrics"
	"github.com/m04kA/SMC-SlotBooking/pkg/txmanager"
)

type appointmentStore interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context) ([]*domain.Appointment, error)
	ListByClientEmail(ctx context.Context, email string) ([]*domain.Appointment, error)
	ListReservedBetween(ctx context.Context, from, to time.Time) ([]time.Time, error)
	Delete(ctx context.Context, id int64) error
}

type scheduleStore interface {
	Get(ctx context.Context) (*domain.ScheduleConfig, error)
	Upsert(ctx context.Context, config *domain.ScheduleConfig) (*domain.ScheduleConfig, error)
	CreateIfNotExists(ctx context.Context, config *domain.ScheduleConfig) error
}

type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Upsert(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

type txManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage набор хранилищ выбранного драйвера
type storage struct {
	appointments appointmentStore
	schedule     scheduleStore
	accounts     accountStore
	tx           txManager
	shutdown     func()
}

// openStorage создает хранилища по storage.driver
func openStorage(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *logger.Logger) (*storage, error) {
	if cfg.Storage.Driver == config.DriverMemory {
		log.Info("Using in-memory storage, data is lost on restart")
		return &storage{
			appointments: memory.NewLedger(),
			schedule:     memory.NewScheduleStore(),
			accounts:     memory.NewAccountStore(),
			tx:           txmanager.NewNoopManager(),
			shutdown:     func() {},
		}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// При выключенных метриках m == nil и обёртка только передаёт вызовы в db
	stopStats := make(chan struct{})
	var wrapped *dbmetrics.DB
	if m != nil {
		wrapped = dbmetrics.WrapWithDefault(db, m, stopStats)
		log.Info("Database metrics collection started")
	} else {
		wrapped = dbmetrics.Wrap(db, nil)
	}

	if err := schema.Create(ctx, wrapped); err != nil {
		close(stopStats)
		_ = db.Close()
		return nil, err
	}

	return &storage{
		appointments: appointmentRepo.NewRepository(wrapped),
		schedule:     scheduleRepo.NewRepository(wrapped),
		accounts:     accountRepo.NewRepository(wrapped),
		tx:           txmanager.NewTransactionManager(wrapped),
		shutdown: func() {
			close(stopStats)
			_ = db.Close()
		},
	}, nil
}

// seedAccounts создает или обновляет аккаунты из [[accounts]]
func seedAccounts(ctx context.Context, accounts accountStore, list []config.AccountConfig, log *logger.Logger) error {
	for _, acc := range list {
		saved, err := accounts.Upsert(ctx, acc.ToDomain())
		if err != nil {
			return fmt.Errorf("seed account %s: %w", acc.Email, err)
		}
		log.Info("Account ready: id=%d, email=%s, role=%s", saved.ID, saved.Email, saved.Role)
	}
	return nil
}

package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SlotBooking/internal/config"
	accountRepo "github.com/m04kA/SMC-SlotBooking/internal/infra/storage/account"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/schema"
	"github.com/m04kA/SMC-SlotBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
	"github.com/m04kA/SMC-SlotBooking/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	reset := flag.Bool("reset", false, "drop all tables (appointments included) and create them again")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if cfg.Storage.Driver != config.DriverPostgres {
		log.Fatal("Migrations need storage.driver = %q, got %q", config.DriverPostgres, cfg.Storage.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	wrapped := dbmetrics.Wrap(db, nil)
	accounts := accountRepo.NewRepository(wrapped)

	// Схема и аккаунты применяются атомарно
	err = txmanager.NewTransactionManager(wrapped).Do(ctx, func(txCtx context.Context) error {
		if *reset {
			log.Warn("Dropping all tables")
			if err := schema.Reset(txCtx, wrapped); err != nil {
				return err
			}
		} else if err := schema.Create(txCtx, wrapped); err != nil {
			return err
		}

		for _, acc := range cfg.Accounts {
			saved, err := accounts.Upsert(txCtx, acc.ToDomain())
			if err != nil {
				return fmt.Errorf("seed account %s: %w", acc.Email, err)
			}
			log.Info("Account ready: id=%d, email=%s, role=%s", saved.ID, saved.Email, saved.Role)
		}
		return nil
	})
	if err != nil {
		log.Fatal("Migration failed: %v", err)
	}

	log.Info("Schema is up to date (host=%s, db=%s, reset=%t)", cfg.Database.Host, cfg.Database.DBName, *reset)
}

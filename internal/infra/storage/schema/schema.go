package schema

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/m04kA/SMC-SlotBooking/pkg/dbmetrics"
)

//go:embed schema.sql
var createSQL string

//go:embed drop.sql
var dropSQL string

// Create создает таблицы, если их ещё нет
func Create(ctx context.Context, db dbmetrics.DBExecutor) error {
	if _, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("schema: create tables: %w", err)
	}
	return nil
}

// Reset удаляет все таблицы и создает их заново
func Reset(ctx context.Context, db dbmetrics.DBExecutor) error {
	if _, err := dbmetrics.GetExecutor(ctx, db).ExecContext(ctx, dropSQL); err != nil {
		return fmt.Errorf("schema: drop tables: %w", err)
	}
	return Create(ctx, db)
}

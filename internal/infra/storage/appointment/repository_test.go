package appointment

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotBooking/pkg/txmanager"
)

var rowColumns = []string{"id", "client_name", "client_email", "starts_at", "paid", "created_at"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	startsAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	t.Run("reserves slot", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (client_name,client_email,starts_at,paid) VALUES ($1,$2,$3,$4) RETURNING id, created_at")).
			WithArgs("Ann", "ann@example.com", startsAt, false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), createdAt))

		created, err := repo.Create(ctx, &domain.Appointment{
			ClientName:  "Ann",
			ClientEmail: "ann@example.com",
			StartsAt:    startsAt,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, createdAt, created.CreatedAt)
		assert.False(t, created.Paid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation means slot taken", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "appointments_starts_at_key"})

		_, err := repo.Create(ctx, &domain.Appointment{ClientName: "Bob", ClientEmail: "bob@example.com", StartsAt: startsAt})
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("other errors are exec errors", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments")).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.Create(ctx, &domain.Appointment{ClientName: "Bob", ClientEmail: "bob@example.com", StartsAt: startsAt})
		assert.ErrorIs(t, err, ErrExecQuery)
		assert.NotErrorIs(t, err, ErrSlotTaken)
	})
}

func TestRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	startsAt := time.Date(2026, 10, 21, 10, 30, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(`SELECT id, client_name, client_email, starts_at, paid, created_at FROM appointments WHERE id = \$1$`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(rowColumns).AddRow(int64(3), "Ann", "ann@example.com", startsAt, true, startsAt))

		got, err := repo.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Ann", got.ClientName)
		assert.Equal(t, startsAt, got.StartsAt)
		assert.True(t, got.Paid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(rowColumns))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("locks row inside transaction", func(t *testing.T) {
		db, mock := newMock(t)
		wrapped := dbmetrics.Wrap(db, nil)
		repo := NewRepository(wrapped)
		tx := txmanager.NewTransactionManager(wrapped)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1 FOR UPDATE")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(rowColumns).AddRow(int64(3), "Ann", "ann@example.com", startsAt, false, startsAt))
		mock.ExpectCommit()

		err := tx.Do(ctx, func(txCtx context.Context) error {
			_, err := repo.GetByID(txCtx, 3)
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Lists(t *testing.T) {
	ctx := context.Background()
	first := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	second := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	t.Run("list all ordered", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM appointments ORDER BY starts_at ASC")).
			WillReturnRows(sqlmock.NewRows(rowColumns).
				AddRow(int64(1), "Ann", "ann@example.com", first, false, first).
				AddRow(int64(2), "Bob", "bob@example.com", second, false, first))

		got, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("list by email is case insensitive", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(client_email) = $1 ORDER BY starts_at ASC")).
			WithArgs("ann@example.com").
			WillReturnRows(sqlmock.NewRows(rowColumns).AddRow(int64(1), "Ann", "Ann@Example.com", first, false, first))

		got, err := repo.ListByClientEmail(ctx, " Ann@Example.COM ")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reserved between", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)
		to := first.AddDate(0, 0, 2)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT starts_at FROM appointments WHERE starts_at >= $1 AND starts_at < $2 ORDER BY starts_at ASC")).
			WithArgs(first, to).
			WillReturnRows(sqlmock.NewRows([]string{"starts_at"}).AddRow(first).AddRow(second))

		got, err := repo.ListReservedBetween(ctx, first, to)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{first, second}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM appointments")).WillReturnError(errors.New("boom"))

		_, err := repo.List(ctx)
		assert.ErrorIs(t, err, ErrExecQuery)
	})
}

func TestRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nothing deleted", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 5), ErrAppointmentNotFound)
	})
}

package account

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

const selectByEmail = "SELECT id, name, email, role FROM accounts WHERE LOWER(email) = $1"

func TestRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found ignoring case", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectByEmail)).
			WithArgs("ann@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
				AddRow(int64(2), "Анна", "ann@example.com", "client"))

		got, err := repo.GetByEmail(ctx, " Ann@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, &domain.Account{ID: 2, Name: "Анна", Email: "ann@example.com", Role: domain.RoleClient}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectByEmail)).
			WithArgs("eve@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}))

		_, err := repo.GetByEmail(ctx, "eve@example.com")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectByEmail)).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.GetByEmail(ctx, "ann@example.com")
		assert.ErrorIs(t, err, ErrScanRow)
	})
}

func TestRepository_Upsert(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO accounts (name,email,role) VALUES ($1,$2,$3) ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role RETURNING id")).
		WithArgs("Доктор", "doc@example.com", "provider").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	input := &domain.Account{Name: "Доктор", Email: "Doc@Example.com", Role: domain.RoleProvider}
	saved, err := repo.Upsert(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, int64(1), saved.ID)
	assert.Equal(t, "doc@example.com", saved.Email)
	assert.Equal(t, "Doc@Example.com", input.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

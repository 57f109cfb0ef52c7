package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/appointment"
)

func TestLedger_ConcurrentReserveSingleWinner(t *testing.T) {
	ledger := NewLedger()
	startsAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	const clients = 50
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		taken     int
	)

	wg.Add(clients)
	for i := 0; i < clients; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := ledger.Create(context.Background(), &domain.Appointment{
				ClientName:  fmt.Sprintf("client-%d", i),
				ClientEmail: fmt.Sprintf("client-%d@example.com", i),
				StartsAt:    startsAt,
			})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, appointment.ErrSlotTaken):
				taken++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, clients-1, taken)

	all, err := ledger.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLedger_SequentialDoubleBooking(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger()
	startsAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	first, err := ledger.Create(ctx, &domain.Appointment{ClientName: "Ann", ClientEmail: "ann@example.com", StartsAt: startsAt})
	require.NoError(t, err)

	// sub-second noise maps to the same slot
	_, err = ledger.Create(ctx, &domain.Appointment{ClientName: "Bob", ClientEmail: "bob@example.com", StartsAt: startsAt.Add(300 * time.Millisecond)})
	assert.ErrorIs(t, err, appointment.ErrSlotTaken)

	got, err := ledger.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.ClientName)
}

func TestLedger_DeleteFreesSlot(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger()
	startsAt := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	created, err := ledger.Create(ctx, &domain.Appointment{ClientName: "Ann", ClientEmail: "ann@example.com", StartsAt: startsAt})
	require.NoError(t, err)

	require.NoError(t, ledger.Delete(ctx, created.ID))
	assert.ErrorIs(t, ledger.Delete(ctx, created.ID), appointment.ErrAppointmentNotFound)

	_, err = ledger.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, appointment.ErrAppointmentNotFound)

	again, err := ledger.Create(ctx, &domain.Appointment{ClientName: "Bob", ClientEmail: "bob@example.com", StartsAt: startsAt})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, again.ID)
}

func TestLedger_Listings(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger()
	base := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

	for i, email := range []string{"ann@example.com", "bob@example.com", "Ann@Example.com"} {
		// inserted in reverse chronological order
		_, err := ledger.Create(ctx, &domain.Appointment{
			ClientName:  "client",
			ClientEmail: email,
			StartsAt:    base.Add(time.Duration(2-i) * time.Hour),
		})
		require.NoError(t, err)
	}

	all, err := ledger.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].StartsAt.Before(all[i].StartsAt))
	}

	mine, err := ledger.ListByClientEmail(ctx, "ANN@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, base, mine[0].StartsAt)

	reserved, err := ledger.ListReservedBetween(ctx, base, base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{base, base.Add(time.Hour)}, reserved)
}

func TestLedger_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	ledger := NewLedger()

	created, err := ledger.Create(ctx, &domain.Appointment{ClientName: "Ann", ClientEmail: "ann@example.com", StartsAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	created.ClientName = "changed"
	got, err := ledger.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.ClientName)
}

func TestScheduleStore(t *testing.T) {
	ctx := context.Background()
	store := NewScheduleStore()

	_, err := store.Get(ctx)
	require.Error(t, err)

	require.NoError(t, store.CreateIfNotExists(ctx, domain.DefaultScheduleConfig()))
	cfg, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultHorizonDays, cfg.HorizonDays)
	assert.True(t, cfg.IsPersisted())

	cfg.HorizonDays = 7
	_, err = store.Upsert(ctx, cfg)
	require.NoError(t, err)

	// existing config is not overwritten
	require.NoError(t, store.CreateIfNotExists(ctx, domain.DefaultScheduleConfig()))
	cfg, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.HorizonDays)
}

func TestAccountStore(t *testing.T) {
	ctx := context.Background()
	store := NewAccountStore()

	saved, err := store.Upsert(ctx, &domain.Account{Name: "Dr. Who", Email: "Doc@Example.com", Role: domain.RoleProvider})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)

	got, err := store.GetByEmail(ctx, " doc@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleProvider, got.Role)

	_, err = store.GetByEmail(ctx, "nobody@example.com")
	assert.Error(t, err)
}

package list_my_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SlotBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SlotBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SlotBooking/pkg/clock"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
)

var now = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	ledger := memory.NewLedger()
	for _, a := range []*domain.Appointment{
		{ClientName: "Анна", ClientEmail: "ann@example.com", StartsAt: time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)},
		{ClientName: "Борис", ClientEmail: "bob@example.com", StartsAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)},
		{ClientName: "Анна", ClientEmail: "Ann@Example.com", StartsAt: time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)},
	} {
		_, err := ledger.Create(context.Background(), a)
		require.NoError(t, err)
	}
	service := appointments.NewService(ledger, clock.Fixed{At: now}, logger.Nop())
	return NewHandler(service, logger.Nop())
}

func get(h *Handler, caller *domain.Caller) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/mine", nil)
	if caller != nil {
		req = req.WithContext(middleware.WithCaller(req.Context(), *caller))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ClientSeesOwnAppointments(t *testing.T) {
	rec := get(newHandler(t), &domain.Caller{Name: "Анна", Email: "ann@example.com", Role: domain.RoleClient})
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.AppointmentListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Appointments, 2)

	// по возрастанию времени начала
	assert.Equal(t, 17, body.Appointments[0].StartsAt.Day())
	assert.Equal(t, 20, body.Appointments[1].StartsAt.Day())

	// до 17-го меньше 48 часов, до 20-го больше
	assert.False(t, body.Appointments[0].Cancellable)
	assert.True(t, body.Appointments[1].Cancellable)
}

func TestHandle_AccessErrors(t *testing.T) {
	h := newHandler(t)

	assert.Equal(t, http.StatusUnauthorized, get(h, nil).Code)
	assert.Equal(t, http.StatusForbidden, get(h, &domain.Caller{Email: "doc@example.com", Role: domain.RoleProvider}).Code)
}

package update_config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBooking/internal/domain"
	"github.com/m04kA/SMC-SlotBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SlotBooking/internal/service/schedule"
	"github.com/m04kA/SMC-SlotBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
)

var (
	provider = domain.Caller{AccountID: 1, Name: "Доктор", Email: "doc@example.com", Role: domain.RoleProvider}
	client   = domain.Caller{AccountID: 2, Name: "Анна", Email: "ann@example.com", Role: domain.RoleClient}
)

func newRequest(body string, caller *domain.Caller) *http.Request {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/config", strings.NewReader(body))
	if caller != nil {
		req = req.WithContext(middleware.WithCaller(req.Context(), *caller))
	}
	return req
}

func TestHandle_ProviderUpdatesConfig(t *testing.T) {
	store := memory.NewScheduleStore()
	h := NewHandler(schedule.NewService(store, true, logger.Nop()), logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, newRequest(`{"nonWorkingWeekdays":[5,6],"horizonDays":1,"openTime":"09:00","closeTime":"10:00"}`, &provider))

	require.Equal(t, http.StatusOK, rec.Code)

	var body models.ConfigResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []int{5, 6}, body.NonWorkingWeekdays)
	assert.Equal(t, 1, body.HorizonDays)
	assert.Equal(t, "10:00", body.CloseTime.String())
	assert.Equal(t, 30, body.SlotDurationMinutes)
	assert.False(t, body.IsDefault)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		caller  *domain.Caller
		status  int
		message string
	}{
		{name: "client", body: `{"horizonDays":7}`, caller: &client, status: http.StatusForbidden, message: msgForbidden},
		{name: "anonymous", body: `{"horizonDays":7}`, status: http.StatusUnauthorized, message: msgMissingCaller},
		{name: "malformed body", body: `{"horizonDays":`, caller: &provider, status: http.StatusBadRequest, message: msgInvalidRequestBody},
		{name: "unknown field", body: `{"maxConcurrentBookings":2}`, caller: &provider, status: http.StatusBadRequest, message: msgInvalidRequestBody},
		{name: "open after close", body: `{"openTime":"18:00"}`, caller: &provider, status: http.StatusBadRequest},
		{name: "weekday out of range", body: `{"nonWorkingWeekdays":[7]}`, caller: &provider, status: http.StatusBadRequest},
		{name: "zero duration", body: `{"slotDurationMinutes":0}`, caller: &provider, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewScheduleStore()
			h := NewHandler(schedule.NewService(store, true, logger.Nop()), logger.Nop())

			rec := httptest.NewRecorder()
			h.Handle(rec, newRequest(tt.body, tt.caller))

			assert.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			if tt.message != "" {
				assert.Equal(t, tt.message, body.Message)
			} else {
				assert.True(t, strings.HasPrefix(body.Message, msgInvalidData), body.Message)
			}
		})
	}
}

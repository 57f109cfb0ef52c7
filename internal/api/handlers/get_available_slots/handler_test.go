package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SlotBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotBooking/pkg/logger"
	"github.com/m04kA/SMC-SlotBooking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*getAvailableSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *getAvailableSlots.Request) bool {
		return req.Date != nil && req.Date.Equal(monday)
	})).Return(&getAvailableSlots.Response{
		From:                monday,
		To:                  monday.AddDate(0, 0, 1),
		SlotDurationMinutes: 30,
		Slots: []getAvailableSlots.Slot{
			{Date: monday, StartTime: types.TimeString("09:30"), StartsAt: monday.Add(9*time.Hour + 30*time.Minute)},
		},
	}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2026-10-19", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2026-10-19", body.From)
	assert.Equal(t, "2026-10-20", body.To)
	assert.Equal(t, 30, body.SlotDurationMinutes)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, AvailableSlot{Date: "2026-10-19", StartTime: "09:30", StartsAt: "2026-10-19 09:30"}, body.Slots[0])
	uc.AssertExpectations(t)
}

func TestHandle_WithoutDate(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{}).
		Return(&getAvailableSlots.Response{From: monday, To: monday, Slots: []getAvailableSlots.Slot{}}, nil)

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"from":"2026-10-19","to":"2026-10-19","slotDurationMinutes":0,"slots":[]}`, rec.Body.String())
}

func TestHandle_InvalidDate(t *testing.T) {
	uc := &mockUseCase{}

	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=19.10.2026", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "unconfigured", err: getAvailableSlots.ErrUnconfigured, status: http.StatusInternalServerError},
		{name: "invalid input", err: getAvailableSlots.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots", nil))

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

package check_cancellable

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
	"github.com/m04kA/SMC-SlotBooking/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgMissingCaller        = "не удалось определить пользователя"
	msgForbidden            = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{id}/cancellable
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /appointments/{id}/cancellable - Invalid appointment ID: %q", idStr)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	caller, _ := middleware.GetCaller(r.Context())

	result, err := h.service.Cancellable(r.Context(), caller, id)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrNoCaller):
			h.logger.Warn("GET /appointments/{id}/cancellable - Missing caller")
			handlers.RespondUnauthorized(w, msgMissingCaller)

		case errors.Is(err, access.ErrUnauthorized):
			h.logger.Warn("GET /appointments/{id}/cancellable - Access denied: appointment_id=%d, email=%s", id, caller.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id}/cancellable - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /appointments/{id}/cancellable - Failed to check appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id}/cancellable - Checked: appointment_id=%d, email=%s, cancellable=%t",
		id, caller.Email, result.Cancellable)
	handlers.RespondJSON(w, http.StatusOK, result)
}

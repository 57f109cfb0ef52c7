package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
)

const (
	msgMissingCaller = "не удалось определить пользователя"
	msgForbidden     = "список всех записей доступен только исполнителю"
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

// Handle GET /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.GetCaller(r.Context())

	result, err := h.service.ListAll(r.Context(), caller)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrNoCaller):
			h.logger.Warn("GET /appointments - Missing caller")
			handlers.RespondUnauthorized(w, msgMissingCaller)

		case errors.Is(err, access.ErrUnauthorized):
			h.logger.Warn("GET /appointments - Access denied: email=%s, role=%s", caller.Email, caller.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /appointments - Failed to get appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

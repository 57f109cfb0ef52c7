package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
	cancelBooking "github.com/m04kA/SMC-SlotBooking/internal/usecase/cancel_booking"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgMissingCaller        = "не удалось определить пользователя"
	msgForbidden            = "доступ запрещен"
	msgPolicyViolation      = "отменить запись можно не позднее чем за 48 часов до начала"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	caller, _ := middleware.GetCaller(r.Context())

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(caller, id))
	if err != nil {
		switch {
		case errors.Is(err, access.ErrNoCaller):
			h.logger.Warn("DELETE /appointments/{id} - Missing caller")
			handlers.RespondUnauthorized(w, msgMissingCaller)

		case errors.Is(err, access.ErrUnauthorized):
			h.logger.Warn("DELETE /appointments/{id} - Access denied: appointment_id=%d, email=%s", id, caller.Email)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("DELETE /appointments/{id} - Invalid input: appointment_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		case errors.Is(err, cancelBooking.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{id} - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrPolicyViolation):
			h.logger.Warn("DELETE /appointments/{id} - Cancellation window passed: appointment_id=%d, email=%s", id, caller.Email)
			handlers.RespondUnprocessable(w, msgPolicyViolation)

		default:
			h.logger.Error("DELETE /appointments/{id} - Failed to cancel appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment cancelled successfully: appointment_id=%d, email=%s",
		id, caller.Email)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

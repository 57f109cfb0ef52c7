package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
	createBooking "github.com/m04kA/SMC-SlotBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartsAt    = "некорректный формат времени записи, ожидается YYYY-MM-DD HH:MM"
	msgMissingCaller      = "не удалось определить пользователя"
	msgForbidden          = "доступ запрещен"
	msgSlotTaken          = "выбранное время уже занято"
	msgSlotNotOffered     = "на выбранное время запись не ведётся"
	msgInvalidData        = "некорректные данные клиента"
	msgUnconfigured       = "расписание не настроено"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.GetCaller(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(caller)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid startsAt: %q, error=%v", req.StartsAt, err)
		handlers.RespondBadRequest(w, msgInvalidStartsAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, access.ErrNoCaller):
			h.logger.Warn("POST /appointments - Missing caller")
			handlers.RespondUnauthorized(w, msgMissingCaller)

		case errors.Is(err, access.ErrUnauthorized):
			h.logger.Warn("POST /appointments - Access denied: email=%s, role=%s", caller.Email, caller.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: startsAt=%s, email=%s", req.StartsAt, caller.Email)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrSlotNotOffered):
			h.logger.Warn("POST /appointments - Slot not offered: startsAt=%s", req.StartsAt)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createBooking.ErrUnconfigured):
			h.logger.Error("POST /appointments - Schedule is not configured")
			handlers.RespondError(w, http.StatusInternalServerError, msgUnconfigured)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: startsAt=%s, email=%s, error=%v",
				req.StartsAt, caller.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client=%s, startsAt=%s",
		result.ID, result.ClientEmail, response.StartsAt)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

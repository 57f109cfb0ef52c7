package update_config

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SlotBooking/internal/service/access"
	"github.com/m04kA/SMC-SlotBooking/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCaller      = "не удалось определить пользователя"
	msgForbidden          = "изменять расписание может только исполнитель"
	msgInvalidData        = "некорректные данные конфигурации"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, _ := middleware.GetCaller(r.Context())

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(caller))
	if err != nil {
		switch {
		case errors.Is(err, access.ErrNoCaller):
			h.logger.Warn("PUT /config - Missing caller")
			handlers.RespondUnauthorized(w, msgMissingCaller)

		case errors.Is(err, access.ErrUnauthorized):
			h.logger.Warn("PUT /config - Access denied: email=%s, role=%s", caller.Email, caller.Role)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /config - Invalid data: error=%v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidData+": "+errorDetail(err))

		default:
			h.logger.Error("PUT /config - Failed to update config: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config - Config updated successfully: email=%s", caller.Email)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// errorDetail отрезает от ошибки валидации имя sentinel-а
func errorDetail(err error) string {
	return strings.TrimPrefix(err.Error(), schedule.ErrInvalidInput.Error()+": ")
}

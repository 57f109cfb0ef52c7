package get_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SlotBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SlotBooking/internal/service/schedule"
)

const msgUnconfigured = "расписание не настроено"

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

// Handle GET /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, schedule.ErrUnconfigured) {
			h.logger.Error("GET /config - Schedule is not configured")
			handlers.RespondError(w, http.StatusInternalServerError, msgUnconfigured)
			return
		}

		h.logger.Error("GET /config - Failed to get config: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /config - Config retrieved successfully: is_default=%t", result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}

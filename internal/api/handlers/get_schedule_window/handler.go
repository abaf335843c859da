package get_schedule_window

import (
	"net/http"

	"github.com/m04kA/ATL-SchedulingService/internal/api/handlers"
)

type Handler struct {
	service SchedulerService
	logger  Logger
}

func NewHandler(service SchedulerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/window
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	window, err := h.service.Window(r.Context())
	if err != nil {
		h.logger.Error("GET /schedule/window - Failed to compute window: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/window - Window computed: %s .. %s", window.MinDate, window.MaxDate)
	handlers.RespondJSON(w, http.StatusOK, window)
}

package get_schedule_options

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

// Handle GET /api/v1/schedule/options
// Query params: locale (optional, es|en)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locale := r.URL.Query().Get("locale")

	options, err := h.service.Options(r.Context(), locale)
	if err != nil {
		h.logger.Error("GET /schedule/options - Failed to get options: locale=%s, error=%v", locale, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedule/options - Options retrieved: locale=%s", options.Locale)
	handlers.RespondJSON(w, http.StatusOK, options)
}

package get_dashboard_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/ATL-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ATL-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidQuery = "некорректные параметры выборки"
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

// Handle GET /api/v1/dashboard/appointments
// Query params: search, view (all|today|tomorrow), sort (name|date|time|status),
// sortDir (asc|desc), page, pageSize
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ToServiceRequest(r.URL.Query())

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /dashboard/appointments - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /dashboard/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /dashboard/appointments - Retrieved %d of %d appointments, page=%d",
		len(result.Appointments), result.Total, result.Page)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package delete_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ATL-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ATL-SchedulingService/internal/service/appointments"
)

const (
	msgMissingUID = "отсутствует идентификатор записи"
	msgNotFound   = "запись не найдена"
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

// Handle DELETE /api/v1/appointments/{uid}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	uid := vars["uid"]
	if uid == "" {
		h.logger.Warn("DELETE /appointments/{uid} - Missing UID")
		handlers.RespondBadRequest(w, msgMissingUID)
		return
	}

	if err := h.service.Delete(r.Context(), uid); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /appointments/{uid} - Appointment not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /appointments/{uid} - Failed to delete appointment: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /appointments/{uid} - Appointment deleted: uid=%s", uid)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

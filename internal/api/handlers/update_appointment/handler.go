package update_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ATL-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ATL-SchedulingService/internal/service/appointments"
	"github.com/m04kA/ATL-SchedulingService/internal/service/appointments/models"
)

const (
	msgMissingUID         = "отсутствует идентификатор записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyUpdate        = "нет полей для обновления"
	msgNotFound           = "запись не найдена"
	msgInvalidStatus      = "неизвестный статус"
	msgInvalidTransition  = "недопустимый переход статуса"
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

// Handle PATCH /api/v1/appointments/{uid}
// Тело запроса содержит любое подмножество редактируемых полей.
// Запрос только со статусом идет коротким путем смены статуса.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	uid := vars["uid"]
	if uid == "" {
		h.logger.Warn("PATCH /appointments/{uid} - Missing UID")
		handlers.RespondBadRequest(w, msgMissingUID)
		return
	}

	var req models.UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{uid} - Invalid request body: uid=%s, error=%v", uid, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.IsEmpty() {
		h.logger.Warn("PATCH /appointments/{uid} - Empty update: uid=%s", uid)
		handlers.RespondBadRequest(w, msgEmptyUpdate)
		return
	}

	var (
		result *models.AppointmentResponse
		err    error
	)
	if isStatusOnly(&req) {
		result, err = h.service.UpdateStatus(r.Context(), uid, &models.UpdateStatusRequest{Status: *req.Status})
	} else {
		result, err = h.service.Update(r.Context(), uid, &req)
	}

	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{uid} - Appointment not found: uid=%s", uid)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidStatus):
			h.logger.Warn("PATCH /appointments/{uid} - Invalid status: uid=%s", uid)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{uid} - Invalid status transition: uid=%s", uid)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{uid} - Invalid input: uid=%s, error=%v", uid, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{uid} - Failed to update appointment: uid=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{uid} - Appointment updated: uid=%s, status=%s", uid, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// isStatusOnly возвращает true, если в запросе задан только статус
func isStatusOnly(req *models.UpdateAppointmentRequest) bool {
	return req.Status != nil && req.Phone == nil && req.Reason == nil &&
		req.Accessories == nil && req.People == nil && req.Outfits == nil && req.Mode == nil
}

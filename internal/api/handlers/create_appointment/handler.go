package create_appointment

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/ATL-SchedulingService/internal/api/handlers"
	createAppointment "github.com/m04kA/ATL-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или слот, ожидается YYYY-MM-DD и H-MM"
	msgConsentRequired    = "требуется согласие с условиями"
	msgUnauthenticated    = "требуется авторизация"
	msgDateNotEligible    = "выбранная дата недоступна для записи"
	msgUnknownSlot        = "неизвестный слот"
	msgSlotPassed         = "выбранный слот уже прошёл"
	msgSlotNotAvailable   = "выбранный слот занят"
	msgAlreadyBooked      = "у вас уже есть запись на этот слот"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sessionToken := bearerToken(r)

	useCaseReq, err := req.ToUseCaseRequest(sessionToken)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrConsentRequired):
			h.logger.Warn("POST /appointments - Consent not given: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgConsentRequired)

		case errors.Is(err, createAppointment.ErrUnauthenticated):
			h.logger.Warn("POST /appointments - Unauthenticated request: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, createAppointment.ErrDateNotEligible):
			h.logger.Warn("POST /appointments - Date not eligible: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateNotEligible)

		case errors.Is(err, createAppointment.ErrUnknownSlot):
			h.logger.Warn("POST /appointments - Unknown slot: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, createAppointment.ErrSlotPassed):
			h.logger.Warn("POST /appointments - Slot already passed: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgSlotPassed)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrAlreadyBooked):
			h.logger.Warn("POST /appointments - Duplicate appointment: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBooked)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: uid=%s, status=%s", result.UID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// bearerToken извлекает токен сессии из заголовка Authorization
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

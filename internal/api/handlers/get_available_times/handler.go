package get_available_times

import (
	"errors"
	"net/http"

	"github.com/m04kA/ATL-SchedulingService/internal/api/handlers"
	"github.com/m04kA/ATL-SchedulingService/internal/service/scheduler"
)

// PickerSessionHeader идентифицирует сессию календаря клиента: ответы на
// уже не выбранную дату в рамках одной сессии отбрасываются
const PickerSessionHeader = "X-Picker-Session"

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgStaleResolve = "выбрана более новая дата, результат устарел"
)

type Handler struct {
	resolver AvailabilityResolver
	logger   Logger
}

func NewHandler(resolver AvailabilityResolver, logger Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// Handle GET /api/v1/schedule/available-times
// Query params: date (required, YYYY-MM-DD)
// Headers: X-Picker-Session (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/available-times - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/available-times - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Резолвер не возвращает ошибок доступности хранилища наружу:
	// при сбое выборки он отдает полный каталог (fail-open)
	result, err := h.resolver.Resolve(r.Context(), r.Header.Get(PickerSessionHeader), date)
	if err != nil {
		if errors.Is(err, scheduler.ErrStaleResolve) {
			h.logger.Info("GET /schedule/available-times - Stale resolve discarded: date=%s", dateStr)
			handlers.RespondError(w, http.StatusConflict, msgStaleResolve)
			return
		}

		h.logger.Error("GET /schedule/available-times - Failed to get slots: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /schedule/available-times - Slots retrieved: date=%s, slots_count=%d, fail_open=%t",
		dateStr, len(result.Slots), result.FailOpen)
	handlers.RespondJSON(w, http.StatusOK, response)
}

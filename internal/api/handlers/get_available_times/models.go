package get_available_times

import (
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	getAvailableTimes "github.com/m04kA/ATL-SchedulingService/internal/usecase/get_available_times"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date     string          `json:"date"`
	Slots    []AvailableSlot `json:"slots"`
	FailOpen bool            `json:"failOpen,omitempty"`
}

// AvailableSlot модель слота для формы записи
type AvailableSlot struct {
	ID    string `json:"id"`    // "8-00"
	Label string `json:"label"` // "8:00"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableTimes.Response) *AvailableTimesResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:    slot.ID,
			Label: slot.Label,
		}
	}

	return &AvailableTimesResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
		FailOpen: resp.FailOpen,
	}
}

// ParseDate разбирает дату из query параметра
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(domain.DateFormat, dateStr)
}

package get_available_times

import (
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Доступные слоты в порядке времени каталога
	// FailOpen true, если хранилище было недоступно и возвращен полный
	// каталог без фильтрации занятости
	FailOpen bool
}

// Slot модель временного слота в ответе
type Slot struct {
	ID    string // Идентификатор слота, например "8-00"
	Label string // Отображаемое время, например "8:00"
}

func toResponseSlots(slots []domain.Slot) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{ID: s.ID(), Label: s.Label()}
	}
	return out
}

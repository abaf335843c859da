package get_available_times

import (
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	"github.com/m04kA/ATL-SchedulingService/pkg/types"
)

// filterAvailableSlots применяет правила доступности к включенным слотам каталога:
//
// 1. Для сегодняшней даты исключаются слоты, чье время уже прошло
// (строго раньше текущего времени). К будущим датам фильтр не применяется.
//
// 2. Для каждого оставшегося слота считаются активные записи (статус не done
// и не cancelled). Слот исключается при достижении вместимости: no-double
// слот на сегодня вмещает 1 запись, любой другой случай - 2.
//
// Порядок каталога сохраняется.
func filterAvailableSlots(
	enabled []domain.Slot,
	appointments []*domain.Appointment,
	selectedDate time.Time,
	now time.Time,
) []domain.Slot {
	isToday := domain.SameDay(selectedDate, now)

	available := make([]domain.Slot, 0, len(enabled))
	for _, slot := range enabled {
		if isToday && isSlotPassed(slot.Time, now) {
			continue
		}

		active := countActiveAppointments(appointments, slot.Time, selectedDate)
		if active >= slot.Capacity(isToday) {
			continue
		}

		available = append(available, slot)
	}

	return available
}

// isSlotPassed проверяет, что время слота строго раньше текущего времени дня
func isSlotPassed(slot types.SlotTime, now time.Time) bool {
	return slot.At(now).Before(now)
}

// countActiveAppointments считает активные записи на указанный слот и дату.
// Записи done и cancelled место в слоте не занимают.
func countActiveAppointments(appointments []*domain.Appointment, slot types.SlotTime, date time.Time) int {
	count := 0
	for _, apt := range appointments {
		if apt.Time != slot {
			continue
		}
		if !domain.SameDay(apt.Date, date) {
			continue
		}
		if !apt.IsActive() {
			continue
		}
		count++
	}
	return count
}

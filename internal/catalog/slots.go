package catalog

import (
	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	"github.com/m04kA/ATL-SchedulingService/pkg/types"
)

// Статический каталог слотов ателье: рабочий день 8:00-18:00 с шагом 40 минут.
// Каталог определяется один раз на процесс и не меняется в рантайме.
// Слоты 12-40 и 13-20 выключены (обеденный перерыв).
//
// Поле NoDouble помечает слоты, которые в день обращения вмещают только одну
// запись: утренние примерки и окна до/после смены персонала.
var slots = []domain.Slot{
	{Time: "8-00", Enabled: true, NoDouble: true},
	{Time: "8-40", Enabled: true, NoDouble: true},
	{Time: "9-20", Enabled: true, NoDouble: true},
	{Time: "10-00", Enabled: true},
	{Time: "10-40", Enabled: true},
	{Time: "11-20", Enabled: true},
	{Time: "12-00", Enabled: true},
	{Time: "12-40", Enabled: false},
	{Time: "13-20", Enabled: false},
	{Time: "14-00", Enabled: true, NoDouble: true},
	{Time: "14-40", Enabled: true},
	{Time: "15-20", Enabled: true},
	{Time: "16-00", Enabled: true},
	{Time: "16-40", Enabled: true},
	{Time: "17-20", Enabled: true, NoDouble: true},
	{Time: "18-00", Enabled: true, NoDouble: true},
}

// Slots возвращает полный каталог слотов в порядке времени
func Slots() []domain.Slot {
	out := make([]domain.Slot, len(slots))
	copy(out, slots)
	return out
}

// EnabledSlots возвращает включенные слоты каталога в порядке времени
func EnabledSlots() []domain.Slot {
	out := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// SlotByID ищет слот каталога по идентификатору времени ("8-00")
func SlotByID(id types.SlotTime) (domain.Slot, bool) {
	for _, s := range slots {
		if s.Time == id {
			return s, true
		}
	}
	return domain.Slot{}, false
}

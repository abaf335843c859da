package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ATL-SchedulingService/pkg/types"
)

func TestSlots_CatalogShape(t *testing.T) {
	all := Slots()
	require.Len(t, all, 16)

	// Каталог идет в порядке времени с шагом 40 минут
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].Time.IsBefore(all[i].Time),
			"%s should come before %s", all[i-1].Time, all[i].Time)
		assert.Equal(t, 40,
			all[i].Time.MinutesFromMidnight()-all[i-1].Time.MinutesFromMidnight())
	}

	assert.Equal(t, types.SlotTime("8-00"), all[0].Time)
	assert.Equal(t, types.SlotTime("18-00"), all[len(all)-1].Time)
}

func TestEnabledSlots_LunchExcluded(t *testing.T) {
	enabled := EnabledSlots()
	require.Len(t, enabled, 14)

	for _, s := range enabled {
		assert.NotEqual(t, types.SlotTime("12-40"), s.Time)
		assert.NotEqual(t, types.SlotTime("13-20"), s.Time)
	}
}

func TestSlots_NoDoubleSet(t *testing.T) {
	noDouble := map[types.SlotTime]bool{
		"8-00": true, "8-40": true, "9-20": true,
		"14-00": true, "17-20": true, "18-00": true,
	}

	for _, s := range Slots() {
		assert.Equal(t, noDouble[s.Time], s.NoDouble, "slot %s", s.Time)
	}
}

func TestSlotByID(t *testing.T) {
	s, ok := SlotByID("8-00")
	require.True(t, ok)
	assert.True(t, s.NoDouble)

	s, ok = SlotByID("12-40")
	require.True(t, ok)
	assert.False(t, s.Enabled)

	_, ok = SlotByID("7-00")
	assert.False(t, ok)
}

func TestOptions_Locales(t *testing.T) {
	reasons := Reasons(LocaleES)
	require.Len(t, reasons, 5)
	assert.Equal(t, "fitting", reasons[0].ID)

	// Неизвестная локаль откатывается на локаль по умолчанию
	fallback := Reasons("fr")
	assert.Equal(t, reasons, fallback)

	modes := Modes(LocaleEN)
	require.Len(t, modes, 2)
	assert.Equal(t, "in_person", modes[0].ID)
}

func TestIsKnownReasonAndMode(t *testing.T) {
	assert.True(t, IsKnownReason("fitting"))
	assert.True(t, IsKnownReason("alterations"))
	assert.False(t, IsKnownReason("unknown"))

	assert.True(t, IsKnownMode("in_person"))
	assert.True(t, IsKnownMode("video_call"))
	assert.False(t, IsKnownMode("phone"))
}

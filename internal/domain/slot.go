package domain

import "github.com/m04kA/ATL-SchedulingService/pkg/types"

// Slot represents a fixed time-of-day booking unit from the static catalog
type Slot struct {
	Time    types.SlotTime // identity, e.g. "8-00"
	Enabled bool
	// NoDouble marks slots that tolerate only one concurrent appointment
	// when the target date is today (two on any other date)
	NoDouble bool
}

// ID returns the slot identity key
func (s Slot) ID() string {
	return s.Time.String()
}

// Label returns the display form of the slot time, e.g. "8:00"
func (s Slot) Label() string {
	return s.Time.Label()
}

// Capacity returns the number of concurrent active appointments the slot
// tolerates for a booking on today (isToday) or on a future date
func (s Slot) Capacity(isToday bool) int {
	if s.NoDouble && isToday {
		return NoDoubleTodayCapacity
	}
	return DefaultSlotCapacity
}

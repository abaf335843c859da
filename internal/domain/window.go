package domain

import "time"

// Date rules of the booking window. All comparisons are calendar-day
// comparisons on the date's own wall clock, so values parsed in UTC and
// bounds built in server-local time agree on boundary days. The only
// impure input is the caller's now.

// IsDateEligible reports whether date can be selected for an appointment.
// Sundays are never eligible regardless of bounds; min and max are compared
// at day granularity with the time of day ignored.
func IsDateEligible(date time.Time, min, max *time.Time) bool {
	if date.Weekday() == time.Sunday {
		return false
	}

	day := dayKey(date)

	if min != nil && day < dayKey(*min) {
		return false
	}
	if max != nil && day > dayKey(*max) {
		return false
	}

	return true
}

// EarliestAvailableDate returns the first date an appointment can target given now.
// Past the same-day cutoff hour the date rolls to the next calendar day; a result
// landing on Sunday is bumped once to Monday. A single bump is sufficient: the only
// reachable Sunday result comes from a Saturday past-cutoff advance.
func EarliestAvailableDate(now time.Time) time.Time {
	date := DayOf(now)

	if now.Hour() >= SameDayCutoffHour {
		date = date.AddDate(0, 0, 1)
	}

	if date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}

	return date
}

// BookingWindow returns the selectable date range [min, max] for the picker,
// recomputed from now on every call
func BookingWindow(now time.Time) (min, max time.Time) {
	min = EarliestAvailableDate(now)
	max = min.AddDate(0, 0, BookingWindowDays)
	return min, max
}

// DayOf truncates t to midnight in its own location
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return dayKey(a) == dayKey(b)
}

// dayKey flattens t to an ordered day number so that dates carrying
// different zones still compare as calendar days, not instants
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

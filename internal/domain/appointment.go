package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/ATL-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusDone      AppointmentStatus = "done"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusOverdue   AppointmentStatus = "overdue"
)

// Appointment represents a fitting appointment in the system
type Appointment struct {
	UID    string // "<date>-<slot>-<email>", all lowercase
	Name   string
	Phone  string
	Email  string // normalized to lowercase
	Date   time.Time
	Time   types.SlotTime
	Status AppointmentStatus

	Reason      string
	Accessories string
	People      int
	Outfits     int
	Mode        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BuildUID derives the appointment identity from its date, slot and client email
func BuildUID(date time.Time, slot types.SlotTime, email string) string {
	return fmt.Sprintf("%s-%s-%s",
		date.Format(DateFormat),
		strings.ToLower(slot.String()),
		strings.ToLower(email),
	)
}

// IsActive returns true if the appointment counts toward slot capacity.
// Only done and cancelled appointments release their slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusDone && a.Status != StatusCancelled
}

// IsPastDue returns true if the appointment's date and slot time lie before now
func (a *Appointment) IsPastDue(now time.Time) bool {
	return a.Time.At(a.Date).Before(now)
}

// DisplayStatus returns the status the appointment should be presented with.
// A stored pending or confirmed appointment whose slot time has passed is shown
// as overdue; the stored status field is not modified by reads.
func (a *Appointment) DisplayStatus(now time.Time) AppointmentStatus {
	if (a.Status == StatusPending || a.Status == StatusConfirmed) && a.IsPastDue(now) {
		return StatusOverdue
	}
	return a.Status
}

// IsTerminal returns true if no further status transitions are allowed
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// IsValid returns true if s is one of the known status values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDone, StatusCancelled, StatusOverdue:
		return true
	}
	return false
}

// CanTransition reports whether a staff-initiated status change from s to target
// is allowed by the appointment lifecycle
func (s AppointmentStatus) CanTransition(target AppointmentStatus) bool {
	if s == target {
		return false
	}

	switch s {
	case StatusPending:
		return target == StatusConfirmed || target == StatusCancelled
	case StatusConfirmed:
		return target == StatusDone || target == StatusCancelled || target == StatusOverdue
	case StatusOverdue:
		return target == StatusConfirmed || target == StatusDone || target == StatusCancelled
	default:
		// done and cancelled are terminal
		return false
	}
}

// InitialStatus returns the status a new appointment is created with.
// Clients that ticked the confirmation toggle start as confirmed, otherwise pending.
func InitialStatus(confirmed bool) AppointmentStatus {
	if confirmed {
		return StatusConfirmed
	}
	return StatusPending
}

// SortField поле сортировки дашборда
type SortField string

const (
	SortByName   SortField = "name"
	SortByDate   SortField = "date"
	SortByTime   SortField = "time"
	SortByStatus SortField = "status"
)

// IsValid returns true if f is one of the sortable dashboard fields
func (f SortField) IsValid() bool {
	switch f {
	case SortByName, SortByDate, SortByTime, SortByStatus:
		return true
	}
	return false
}

// ViewFilter взаимоисключающий фильтр представления дашборда
type ViewFilter string

const (
	ViewAll      ViewFilter = "all"
	ViewToday    ViewFilter = "today"
	ViewTomorrow ViewFilter = "tomorrow"
)

// IsValid returns true if v is one of the known dashboard views
func (v ViewFilter) IsValid() bool {
	switch v {
	case ViewAll, ViewToday, ViewTomorrow:
		return true
	}
	return false
}

// DashboardQuery параметры выборки дашборда: поиск, представление,
// единственное активное поле сортировки и страница.
// Единый объект состояния вместо независимых флагов, чтобы взаимное
// исключение представлений обеспечивалось структурно.
type DashboardQuery struct {
	Search    string
	View      ViewFilter
	SortField SortField
	SortAsc   bool
	Page      int
	PageSize  int
}

// AppointmentsFilter фильтр выборки записей из хранилища
type AppointmentsFilter struct {
	Date  *time.Time // встречи на конкретную дату (по дню)
	Email *string    // встречи конкретного клиента
}

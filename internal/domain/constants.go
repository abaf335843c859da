package domain

// Capacity rules
const (
	// DefaultSlotCapacity максимум одновременных активных записей на слот
	DefaultSlotCapacity = 2

	// NoDoubleTodayCapacity максимум для no-double слота, если дата записи - сегодня
	NoDoubleTodayCapacity = 1
)

// Booking window rules
const (
	// BookingWindowDays глубина окна записи от минимальной даты
	BookingWindowDays = 180

	// SameDayCutoffHour час (локальное время), начиная с которого запись
	// на текущий день закрывается и минимальная дата сдвигается на завтра
	SameDayCutoffHour = 18
)

// Business validation constants
const (
	MinPeopleCount      = 1
	MaxPeopleCount      = 10
	MinOutfitsCount     = 1
	MaxOutfitsCount     = 20
	MaxReasonLength     = 500
	MaxAccessoriesLength = 500
	MaxNameLength       = 120
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие место в слоте.
// Используется при подсчете занятости слотов.
var InactiveStatuses = []AppointmentStatus{
	StatusDone,
	StatusCancelled,
}

// AllStatuses полный перечень статусов записи
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusDone,
	StatusCancelled,
	StatusOverdue,
}

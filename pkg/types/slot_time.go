package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidSlotTime возвращается при некорректном формате времени слота
var ErrInvalidSlotTime = errors.New("invalid slot time format, expected H-MM")

// SlotTime время слота в формате "H-MM" (например "8-00", "10-40", "17-20").
// Часы без ведущего нуля, минуты всегда две цифры.
// Используется как стабильный идентификатор времени внутри дня.
type SlotTime string

// NewSlotTime создает SlotTime из time.Time
func NewSlotTime(t time.Time) SlotTime {
	return SlotTime(fmt.Sprintf("%d-%02d", t.Hour(), t.Minute()))
}

// NewSlotTimeFromString парсит и валидирует строку формата "H-MM"
func NewSlotTimeFromString(s string) (SlotTime, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 || len(parts[1]) != 2 {
		return "", ErrInvalidSlotTime
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", ErrInvalidSlotTime
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", ErrInvalidSlotTime
	}

	return SlotTime(fmt.Sprintf("%d-%02d", hour, minute)), nil
}

// Clock возвращает часы и минуты слота.
// Для некорректного значения возвращает (0, 0).
func (t SlotTime) Clock() (hour, minute int) {
	parts := strings.Split(string(t), "-")
	if len(parts) != 2 {
		return 0, 0
	}
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute
}

// MinutesFromMidnight возвращает количество минут от полуночи.
// Используется для сортировки слотов внутри дня.
func (t SlotTime) MinutesFromMidnight() int {
	hour, minute := t.Clock()
	return hour*60 + minute
}

// IsBefore проверяет, что время слота строго раньше other
func (t SlotTime) IsBefore(other SlotTime) bool {
	return t.MinutesFromMidnight() < other.MinutesFromMidnight()
}

// IsAfter проверяет, что время слота строго позже other
func (t SlotTime) IsAfter(other SlotTime) bool {
	return t.MinutesFromMidnight() > other.MinutesFromMidnight()
}

// Label возвращает отображаемую форму "H:MM" (например "8:00")
func (t SlotTime) Label() string {
	hour, minute := t.Clock()
	return fmt.Sprintf("%d:%02d", hour, minute)
}

// At возвращает момент времени слота внутри указанного дня
func (t SlotTime) At(day time.Time) time.Time {
	hour, minute := t.Clock()
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func (t SlotTime) String() string {
	return string(t)
}

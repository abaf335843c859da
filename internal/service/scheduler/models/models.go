package models

// WindowResponse границы окна записи для календаря
type WindowResponse struct {
	MinDate string `json:"minDate"` // "2026-03-14"
	MaxDate string `json:"maxDate"`
}

// OptionResponse элемент справочника с локализованной подписью
type OptionResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SlotOptionResponse слот каталога для формы записи
type SlotOptionResponse struct {
	ID    string `json:"id"`    // "8-00"
	Label string `json:"label"` // "8:00"
}

// OptionsResponse справочники формы записи
type OptionsResponse struct {
	Locale  string               `json:"locale"`
	Slots   []SlotOptionResponse `json:"slots"`
	Reasons []OptionResponse     `json:"reasons"`
	Modes   []OptionResponse     `json:"modes"`
}

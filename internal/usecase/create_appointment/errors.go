package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrConsentRequired возвращается, когда клиент не отметил согласие с условиями
	ErrConsentRequired = errors.New("terms consent is required")

	// ErrUnauthenticated возвращается, когда профиль клиента недоступен
	// (нет сессии или профиль не найден)
	ErrUnauthenticated = errors.New("client profile is not available")

	// ErrDateNotEligible возвращается, когда дата вне окна записи или воскресенье
	ErrDateNotEligible = errors.New("date is not eligible for booking")

	// ErrUnknownSlot возвращается для слота, которого нет в каталоге
	// или который выключен
	ErrUnknownSlot = errors.New("unknown or disabled time slot")

	// ErrSlotPassed возвращается, когда время слота на сегодня уже прошло
	ErrSlotPassed = errors.New("time slot has already passed")

	// ErrSlotNotAvailable возвращается, когда вместимость слота исчерпана
	ErrSlotNotAvailable = errors.New("time slot is not available")

	// ErrAlreadyBooked возвращается при повторной записи на ту же дату,
	// слот и email
	ErrAlreadyBooked = errors.New("appointment already exists for this slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

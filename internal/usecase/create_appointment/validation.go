package create_appointment

import (
	"fmt"

	"github.com/m04kA/ATL-SchedulingService/internal/catalog"
	"github.com/m04kA/ATL-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отсутствие согласия с условиями - блокирующая ошибка: запись не создается.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !req.Consent {
		return ErrConsentRequired
	}

	if req.SessionToken == "" {
		return ErrUnauthenticated
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time slot is required", ErrInvalidInput)
	}

	if req.Reason != "" && !catalog.IsKnownReason(req.Reason) {
		return fmt.Errorf("%w: unknown reason %q", ErrInvalidInput, req.Reason)
	}

	if req.Mode != "" && !catalog.IsKnownMode(req.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, req.Mode)
	}

	if req.People < 0 || req.People > domain.MaxPeopleCount {
		return fmt.Errorf("%w: people count out of range", ErrInvalidInput)
	}

	if req.Outfits < 0 || req.Outfits > domain.MaxOutfitsCount {
		return fmt.Errorf("%w: outfits count out of range", ErrInvalidInput)
	}

	return nil
}

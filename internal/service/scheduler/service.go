package scheduler

import (
	"context"

	"github.com/m04kA/ATL-SchedulingService/internal/catalog"
	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	"github.com/m04kA/ATL-SchedulingService/internal/service/scheduler/models"
)

// Service сервис расписания: окно записи и справочники формы
type Service struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(logger Logger) *Service {
	return &Service{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Window возвращает границы окна записи для календаря.
// Окно пересчитывается на каждый запрос от текущего момента: после 18:00
// сегодняшняя дата уже недоступна, воскресенье пропускается.
func (s *Service) Window(_ context.Context) (*models.WindowResponse, error) {
	now := s.timeProvider.Now()
	minDate, maxDate := domain.BookingWindow(now)

	s.logger.Info("Window: %s .. %s", minDate.Format(domain.DateFormat), maxDate.Format(domain.DateFormat))

	return &models.WindowResponse{
		MinDate: minDate.Format(domain.DateFormat),
		MaxDate: maxDate.Format(domain.DateFormat),
	}, nil
}

// Options возвращает справочники формы записи.
// Неизвестная локаль откатывается на локаль по умолчанию.
func (s *Service) Options(_ context.Context, locale string) (*models.OptionsResponse, error) {
	if locale == "" {
		locale = catalog.DefaultLocale
	}
	if locale != catalog.LocaleES && locale != catalog.LocaleEN {
		s.logger.Warn("Options: unknown locale %q, falling back to %s", locale, catalog.DefaultLocale)
		locale = catalog.DefaultLocale
	}

	enabled := catalog.EnabledSlots()
	slots := make([]models.SlotOptionResponse, 0, len(enabled))
	for _, slot := range enabled {
		slots = append(slots, models.SlotOptionResponse{
			ID:    slot.ID(),
			Label: slot.Label(),
		})
	}

	resp := &models.OptionsResponse{
		Locale:  locale,
		Slots:   slots,
		Reasons: make([]models.OptionResponse, 0),
		Modes:   make([]models.OptionResponse, 0),
	}

	for _, opt := range catalog.Reasons(locale) {
		resp.Reasons = append(resp.Reasons, models.OptionResponse{ID: opt.ID, Label: opt.Label})
	}
	for _, opt := range catalog.Modes(locale) {
		resp.Modes = append(resp.Modes, models.OptionResponse{ID: opt.ID, Label: opt.Label})
	}

	return resp, nil
}

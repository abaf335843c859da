package get_available_times

import (
	"context"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
)

// UseCase use case получения доступных слотов на выбранную дату
type UseCase struct {
	catalog      []domain.Slot
	repo         AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// catalog - полный каталог слотов в порядке времени.
func NewUseCase(catalog []domain.Slot, repo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		catalog:      catalog,
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов.
//
// Пустая дата дает пустой список без обращения к хранилищу. Ошибка чтения
// хранилища НЕ пробрасывается наверх: резолвер деградирует открыто и
// возвращает полный включенный каталог без фильтров занятости и прошедшего
// времени (fail-open). Кэширования нет - каждый вызов перечитывает записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date.IsZero() {
		uc.logger.Warn("GetAvailableTimes: empty date, returning no slots")
		return &Response{Slots: []Slot{}}, nil
	}

	uc.logger.Info("GetAvailableTimes: date=%s", req.Date.Format(domain.DateFormat))

	enabled := enabledSlots(uc.catalog)
	now := uc.timeProvider.Now()

	appointments, err := uc.repo.GetByFilter(ctx, domain.AppointmentsFilter{Date: &req.Date})
	if err != nil {
		// Fail-open: при недоступности хранилища показываем весь включенный
		// каталог вместо пустого списка. Осознанное продуктовое решение.
		uc.logger.Error("GetAvailableTimes: failed to fetch appointments for date=%s, degrading open: %v",
			req.Date.Format(domain.DateFormat), err)
		return &Response{
			Date:     req.Date,
			Slots:    toResponseSlots(enabled),
			FailOpen: true,
		}, nil
	}

	available := filterAvailableSlots(enabled, appointments, req.Date, now)

	uc.logger.Info("GetAvailableTimes: date=%s, %d of %d enabled slots available",
		req.Date.Format(domain.DateFormat), len(available), len(enabled))

	return &Response{
		Date:  req.Date,
		Slots: toResponseSlots(available),
	}, nil
}

func enabledSlots(catalog []domain.Slot) []domain.Slot {
	out := make([]domain.Slot, 0, len(catalog))
	for _, s := range catalog {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/catalog"
	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	"github.com/m04kA/ATL-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/ATL-SchedulingService/internal/integrations/profileservice"
	"github.com/m04kA/ATL-SchedulingService/pkg/types"
)

// UseCase use case создания записи на примерку
type UseCase struct {
	repo          AppointmentRepository
	profileClient ProfileServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo AppointmentRepository,
	profileClient ProfileServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:          repo,
		profileClient: profileClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания записи.
//
// Проверка доступности слота и вставка НЕ атомарны: транзакций и блокировок
// нет, гонка двух клиентов за последнее место решается только уникальным
// индексом по uid и принимается как допустимый риск eventual consistency.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (согласие, справочники, диапазоны)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: date=%s, time=%s, mode=%s",
		req.Date.Format(domain.DateFormat), req.Time, req.Mode)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем профиль клиента
	profile, err := uc.profileClient.GetProfile(ctx, req.SessionToken)
	if err != nil {
		if errors.Is(err, profileservice.ErrUnauthenticated) || errors.Is(err, profileservice.ErrProfileNotFound) {
			uc.logger.Warn("CreateAppointment: client profile unavailable: %v", err)
			return nil, ErrUnauthenticated
		}
		uc.logger.Error("CreateAppointment: failed to get profile: %v", err)
		return nil, fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	if profile.Name == "" || profile.Email == "" {
		uc.logger.Warn("CreateAppointment: profile has no name or email")
		return nil, ErrUnauthenticated
	}

	// 4. Проверяем дату: окно записи пересчитывается от текущего момента
	minDate, maxDate := domain.BookingWindow(now)
	if !domain.IsDateEligible(req.Date, &minDate, &maxDate) {
		uc.logger.Warn("CreateAppointment: date %s is not eligible (window %s..%s)",
			req.Date.Format(domain.DateFormat), minDate.Format(domain.DateFormat), maxDate.Format(domain.DateFormat))
		return nil, ErrDateNotEligible
	}

	// 5. Проверяем слот по каталогу
	slot, ok := catalog.SlotByID(req.Time)
	if !ok || !slot.Enabled {
		uc.logger.Warn("CreateAppointment: unknown or disabled slot %s", req.Time)
		return nil, ErrUnknownSlot
	}

	isToday := domain.SameDay(req.Date, now)
	if isToday && isSlotPassed(slot.Time, now) {
		uc.logger.Warn("CreateAppointment: slot %s already passed today", req.Time)
		return nil, ErrSlotPassed
	}

	// 6. Перепроверяем вместимость слота теми же правилами, что и резолвер.
	// Между этой проверкой и вставкой возможна гонка - см. комментарий выше.
	existing, err := uc.repo.GetByFilter(ctx, domain.AppointmentsFilter{Date: &req.Date})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to fetch appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch appointments: %v", ErrInternal, err)
	}

	active := countActiveAppointments(existing, slot.Time, req.Date)
	if active >= slot.Capacity(isToday) {
		uc.logger.Warn("CreateAppointment: slot %s full, %d/%d spots taken",
			req.Time, active, slot.Capacity(isToday))
		return nil, ErrSlotNotAvailable
	}

	// 7. Создаем запись; начальный статус зависит от флага подтверждения
	email := strings.ToLower(profile.Email)
	apt := &domain.Appointment{
		UID:         domain.BuildUID(req.Date, slot.Time, email),
		Name:        profile.Name,
		Phone:       profile.Phone,
		Email:       email,
		Date:        domain.DayOf(req.Date),
		Time:        slot.Time,
		Status:      domain.InitialStatus(req.Confirm),
		Reason:      req.Reason,
		Accessories: req.Accessories,
		People:      defaultCount(req.People),
		Outfits:     defaultCount(req.Outfits),
		Mode:        req.Mode,
	}

	created, err := uc.repo.Create(ctx, apt)
	if err != nil {
		if errors.Is(err, appointment.ErrDuplicateUID) {
			uc.logger.Warn("CreateAppointment: duplicate uid %s", apt.UID)
			return nil, ErrAlreadyBooked
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: created uid=%s status=%s", created.UID, created.Status)

	return toResponse(created), nil
}

// isSlotPassed проверяет, что время слота строго раньше текущего времени дня
func isSlotPassed(slot types.SlotTime, now time.Time) bool {
	return slot.At(now).Before(now)
}

// countActiveAppointments считает активные записи на указанный слот и дату
func countActiveAppointments(appointments []*domain.Appointment, slot types.SlotTime, date time.Time) int {
	count := 0
	for _, apt := range appointments {
		if apt.Time != slot {
			continue
		}
		if !domain.SameDay(apt.Date, date) {
			continue
		}
		if !apt.IsActive() {
			continue
		}
		count++
	}
	return count
}

// defaultCount нормализует счетчики формы: пустое значение трактуется как 1
func defaultCount(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}

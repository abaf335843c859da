package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/ATL-SchedulingService/internal/infra/storage/appointment"
	"github.com/m04kA/ATL-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с записями на примерку со стороны персонала
type Service struct {
	repo            AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
	defaultPageSize int
}

// NewService создает новый экземпляр сервиса записей
func NewService(repo AppointmentRepository, defaultPageSize int, logger Logger) *Service {
	return &Service{
		repo:            repo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		defaultPageSize: defaultPageSize,
	}
}

// List получает страницу записей для дашборда.
// Поиск, представление, сортировка и пагинация применяются одним запросом,
// итоговый статус каждой записи вычисляется на момент чтения.
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	q, err := req.ToDomainQuery(s.defaultPageSize)
	if err != nil {
		s.logger.Warn("List: invalid query: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("List: fetching appointments, search=%q, view=%s, sort=%s asc=%t, page=%d",
		q.Search, q.View, q.SortField, q.SortAsc, q.Page)

	now := s.timeProvider.Now()

	appointments, total, err := s.repo.ListDashboard(ctx, q, domain.DayOf(now))
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d appointments", len(appointments), total)
	return models.FromDomainAppointmentList(appointments, total, q, now), nil
}

// Get получает запись по UID
func (s *Service) Get(ctx context.Context, uid string) (*models.AppointmentResponse, error) {
	s.logger.Info("Get: fetching appointment uid=%s", uid)

	apt, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Get: appointment uid=%s not found", uid)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Get: repository error for uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(apt, s.timeProvider.Now()), nil
}

// UpdateStatus меняет статус записи с проверкой допустимости перехода.
// Переход проверяется от сохранённого статуса, done и cancelled терминальны.
func (s *Service) UpdateStatus(ctx context.Context, uid string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: uid=%s, status=%s", uid, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for uid=%s", req.Status, uid)
		return nil, ErrInvalidStatus
	}

	apt, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment uid=%s not found", uid)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !apt.Status.CanTransition(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for uid=%s", apt.Status, newStatus, uid)
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, uid, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	apt.Status = newStatus
	s.logger.Info("UpdateStatus: successfully updated uid=%s to status=%s", uid, newStatus)
	return models.FromDomainAppointment(apt, s.timeProvider.Now()), nil
}

// Update частично обновляет запись.
// Поданные поля перезаписывают текущие, отсутствующие остаются как есть.
func (s *Service) Update(ctx context.Context, uid string, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error) {
	if req == nil || req.IsEmpty() {
		s.logger.Warn("Update: empty request for uid=%s", uid)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	s.logger.Info("Update: uid=%s", uid)

	apt, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Update: appointment uid=%s not found", uid)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	var status *domain.AppointmentStatus
	if req.Status != nil {
		newStatus, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("Update: invalid status=%s for uid=%s", *req.Status, uid)
			return nil, ErrInvalidStatus
		}
		if !apt.Status.CanTransition(newStatus) {
			s.logger.Warn("Update: transition %s -> %s not allowed for uid=%s", apt.Status, newStatus, uid)
			return nil, ErrInvalidTransition
		}
		status = &newStatus
	}

	if err := s.repo.Update(ctx, uid, req.ToUpdateFields(status)); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Update: repository error for uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		s.logger.Error("Update: failed to reload uid=%s: %v", uid, err)
		return nil, fmt.Errorf("%w: Update - failed to reload: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated uid=%s", uid)
	return models.FromDomainAppointment(updated, s.timeProvider.Now()), nil
}

// Delete удаляет запись по UID
func (s *Service) Delete(ctx context.Context, uid string) error {
	s.logger.Info("Delete: uid=%s", uid)

	if err := s.repo.Delete(ctx, uid); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment uid=%s not found", uid)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for uid=%s: %v", uid, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted uid=%s", uid)
	return nil
}

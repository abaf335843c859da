package appointments

import (
	"context"
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/domain"
	"github.com/m04kA/ATL-SchedulingService/internal/infra/storage/appointment"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByUID(ctx context.Context, uid string) (*domain.Appointment, error)
	ListDashboard(ctx context.Context, q domain.DashboardQuery, today time.Time) ([]*domain.Appointment, int, error)
	UpdateStatus(ctx context.Context, uid string, status domain.AppointmentStatus) error
	Update(ctx context.Context, uid string, fields appointment.UpdateFields) error
	Delete(ctx context.Context, uid string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

package scheduler

import (
	"context"
	"time"

	"github.com/m04kA/ATL-SchedulingService/internal/usecase/get_available_times"
)

// AvailabilityResolver интерфейс резолвера доступных слотов
type AvailabilityResolver interface {
	Execute(ctx context.Context, req *get_available_times.Request) (*get_available_times.Response, error)
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

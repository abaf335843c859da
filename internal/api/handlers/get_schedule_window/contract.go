package get_schedule_window

import (
	"context"

	"github.com/m04kA/ATL-SchedulingService/internal/service/scheduler/models"
)

type SchedulerService interface {
	Window(ctx context.Context) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

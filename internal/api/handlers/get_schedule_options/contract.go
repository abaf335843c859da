package get_schedule_options

import (
	"context"

	"github.com/m04kA/ATL-SchedulingService/internal/service/scheduler/models"
)

type SchedulerService interface {
	Options(ctx context.Context, locale string) (*models.OptionsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

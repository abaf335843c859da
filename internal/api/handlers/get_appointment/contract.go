package get_appointment

import (
	"context"

	"github.com/m04kA/ATL-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	Get(ctx context.Context, uid string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

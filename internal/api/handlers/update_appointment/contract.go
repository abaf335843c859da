package update_appointment

import (
	"context"

	"github.com/m04kA/ATL-SchedulingService/internal/service/appointments/models"
)

type AppointmentService interface {
	Update(ctx context.Context, uid string, req *models.UpdateAppointmentRequest) (*models.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, uid string, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

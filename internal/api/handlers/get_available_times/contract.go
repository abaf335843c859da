package get_available_times

import (
	"context"
	"time"

	getAvailableTimes "github.com/m04kA/ATL-SchedulingService/internal/usecase/get_available_times"
)

type AvailabilityResolver interface {
	Resolve(ctx context.Context, sessionKey string, date time.Time) (*getAvailableTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

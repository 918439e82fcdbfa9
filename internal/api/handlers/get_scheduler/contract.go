package get_scheduler

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Scheduler(ctx context.Context) (*models.SchedulerView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

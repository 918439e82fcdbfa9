package get_dashboard

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Dashboard(ctx context.Context, actor *domain.User) (*models.DashboardView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package get_profile

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/service/profile/models"
)

type ProfileService interface {
	Get(ctx context.Context, user *domain.User) (*models.ProfileView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

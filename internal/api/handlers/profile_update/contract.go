package profile_update

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/service/profile/models"
)

type ProfileService interface {
	Update(ctx context.Context, user *domain.User, req models.UpdateProfileRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

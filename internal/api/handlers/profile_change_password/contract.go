package profile_change_password

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/service/profile/models"
)

type ProfileService interface {
	ChangePassword(ctx context.Context, user *domain.User, req models.ChangePasswordRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

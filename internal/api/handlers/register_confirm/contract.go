package register_confirm

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth/models"
)

type AuthService interface {
	ConfirmRegistration(ctx context.Context, req models.ConfirmRegistrationRequest) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

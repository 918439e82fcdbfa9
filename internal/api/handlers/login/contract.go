package login

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

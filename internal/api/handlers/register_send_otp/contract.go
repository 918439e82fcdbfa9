package register_send_otp

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/service/auth/models"
)

type AuthService interface {
	SendRegistrationOTP(ctx context.Context, req models.SendRegistrationOTPRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

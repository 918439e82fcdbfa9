package profile_send_otp

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
)

type ProfileService interface {
	SendOTP(ctx context.Context, user *domain.User) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

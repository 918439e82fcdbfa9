package delete_user

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
)

type UserService interface {
	Delete(ctx context.Context, actor *domain.User, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

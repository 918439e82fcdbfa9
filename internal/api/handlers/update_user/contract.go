package update_user

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/service/users/models"
)

type UserService interface {
	Update(ctx context.Context, req models.UpdateUserRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

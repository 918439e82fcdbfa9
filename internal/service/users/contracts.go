package users

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id int64, update domain.UserUpdate) error
	Delete(ctx context.Context, id int64) error
}

// PasswordHasher хеширование паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

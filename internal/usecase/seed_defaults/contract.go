package seed_defaults

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Count(ctx context.Context, status *domain.RoomStatus) (int, error)
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
}

// PasswordHasher хеширование паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package middleware

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
)

// SessionStore хранилище сессий
type SessionStore interface {
	Get(ctx context.Context, token string) (int64, error)
}

// UserRepository источник пользователей для сессии
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

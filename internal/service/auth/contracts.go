package auth

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/infra/cache/otp"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByFullName(ctx context.Context, fullName string) (*domain.User, error)
	Update(ctx context.Context, id int64, update domain.UserUpdate) error
}

// OTPStore хранилище одноразовых кодов
type OTPStore interface {
	Issue(ctx context.Context, purpose otp.Purpose, subject string) (string, error)
	Verify(ctx context.Context, purpose otp.Purpose, subject, code string) error
	Discard(ctx context.Context, purpose otp.Purpose, subject string) error
}

// SessionStore хранилище сессий
type SessionStore interface {
	Create(ctx context.Context, userID int64) (string, error)
	Delete(ctx context.Context, token string) error
}

// Mailer отправка кодов по почте
type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
}

// PasswordHasher хеширование паролей
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

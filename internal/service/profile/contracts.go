package profile

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/infra/cache/otp"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id int64, update domain.UserUpdate) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListHistory(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingHistoryItem, error)
}

// OTPStore хранилище одноразовых кодов
type OTPStore interface {
	Issue(ctx context.Context, purpose otp.Purpose, subject string) (string, error)
	Verify(ctx context.Context, purpose otp.Purpose, subject, code string) error
	Discard(ctx context.Context, purpose otp.Purpose, subject string) error
}

// Mailer отправка кодов по почте
type Mailer interface {
	SendOTP(ctx context.Context, to, code string) error
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

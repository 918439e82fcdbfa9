package bookings

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ListHistory(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingHistoryItem, error)
	Count(ctx context.Context, userID *int64) (int, error)
	Delete(ctx context.Context, id int64) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

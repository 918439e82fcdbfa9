package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
)

// Booking represents a classroom reservation
// StartTime and DurationLabel are stored verbatim as the client sent them
type Booking struct {
	ID            int64
	RoomID        int64
	UserID        int64
	BookerName    string
	StartTime     string // ISO-8601, "2024-01-01T02:00:00Z"
	DurationLabel string // "1 Giờ", "1 Giờ 30 Phút", "30 Phút"
	Status        BookingStatus
	CreatedAt     time.Time
}

// IsOwnedBy returns true if the booking was created by the user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	RoomID *int64 // Фильтр по комнате (опционально)
	UserID *int64 // Фильтр по пользователю (опционально)
	Limit  uint64 // 0 = без ограничения
	Latest bool   // Сначала новые (по id DESC)
}

// BookingHistoryItem запись истории бронирований с названием комнаты
type BookingHistoryItem struct {
	BookingID     int64
	BookerName    string
	RoomName      string
	StartTime     string
	DurationLabel string
	Status        BookingStatus
}

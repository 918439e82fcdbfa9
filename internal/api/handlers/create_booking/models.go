package create_booking

import (
	"time"

	"github.com/m04kA/EduManager-BookingService/internal/domain"
	createBooking "github.com/m04kA/EduManager-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID          int64  `json:"room_id"`
	StartTime       string `json:"start_time"`       // "2024-01-01T02:00:00Z"
	DurationDisplay string `json:"duration_display"` // "1 Giờ 30 Phút"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64  `json:"id"`
	RoomID          int64  `json:"room_id"`
	UserID          int64  `json:"user_id"`
	BookerName      string `json:"booker_name"`
	StartTime       string `json:"start_time"`
	DurationDisplay string `json:"duration_display"`
	End             string `json:"end_time"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
}

// CreateBookingResponse успешный ответ
type CreateBookingResponse struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Имя в расписании: ФИО, иначе логин
func (r *CreateBookingRequest) ToUseCaseRequest(user *domain.User) *createBooking.Request {
	return &createBooking.Request{
		RoomID:        r.RoomID,
		UserID:        user.ID,
		BookerName:    user.DisplayName(),
		StartTime:     r.StartTime,
		DurationLabel: r.DurationDisplay,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		RoomID:          resp.RoomID,
		UserID:          resp.UserID,
		BookerName:      resp.BookerName,
		StartTime:       resp.StartTime,
		DurationDisplay: resp.DurationLabel,
		End:             resp.End.UTC().Format(time.RFC3339),
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}

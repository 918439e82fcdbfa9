package get_scheduler

import (
	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/bookings/models"
)

// BookingResponse бронирование в расписании
type BookingResponse struct {
	ID              int64  `json:"id"`
	RoomID          int64  `json:"room_id"`
	UserID          int64  `json:"user_id"`
	BookerName      string `json:"booker_name"`
	StartTime       string `json:"start_time"`
	DurationDisplay string `json:"duration_display"`
	Status          string `json:"status"`
}

// SchedulerResponse HTTP response model
type SchedulerResponse struct {
	Status   string                  `json:"status"`
	Rooms    []handlers.RoomResponse `json:"rooms"`
	Bookings []BookingResponse       `json:"bookings"`
}

// FromServiceView конвертирует данные расписания в HTTP response
func FromServiceView(view *models.SchedulerView) *SchedulerResponse {
	list := make([]BookingResponse, 0, len(view.Bookings))
	for _, b := range view.Bookings {
		list = append(list, BookingResponse{
			ID:              b.ID,
			RoomID:          b.RoomID,
			UserID:          b.UserID,
			BookerName:      b.BookerName,
			StartTime:       b.StartTime,
			DurationDisplay: b.DurationLabel,
			Status:          b.Status,
		})
	}
	return &SchedulerResponse{
		Status:   handlers.StatusSuccess,
		Rooms:    handlers.FromServiceRooms(view.Rooms),
		Bookings: list,
	}
}

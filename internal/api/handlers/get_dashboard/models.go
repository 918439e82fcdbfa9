package get_dashboard

import (
	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/domain"
	"github.com/m04kA/EduManager-BookingService/internal/service/bookings/models"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	Status         string                         `json:"status"`
	Username       string                         `json:"username"`
	FullName       string                         `json:"full_name"`
	Role           string                         `json:"role"`
	Rooms          []handlers.RoomResponse        `json:"rooms"`
	TotalRooms     int                            `json:"total_rooms"`
	AvailableRooms int                            `json:"available_rooms"`
	BookingCount   int                            `json:"booking_count"`
	History        []handlers.HistoryItemResponse `json:"history"`
}

// FromServiceView конвертирует данные главной страницы в HTTP response
func FromServiceView(user *domain.User, view *models.DashboardView) *DashboardResponse {
	return &DashboardResponse{
		Status:         handlers.StatusSuccess,
		Username:       user.Username,
		FullName:       user.FullName,
		Role:           string(user.Role),
		Rooms:          handlers.FromServiceRooms(view.Rooms),
		TotalRooms:     view.TotalRooms,
		AvailableRooms: view.AvailableRooms,
		BookingCount:   view.BookingCount,
		History:        handlers.FromServiceHistory(view.History),
	}
}

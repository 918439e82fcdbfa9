package models

import (
	"github.com/m04kA/EduManager-BookingService/internal/domain"
	roomModels "github.com/m04kA/EduManager-BookingService/internal/service/rooms/models"
)

// BookingResponse бронирование в расписании
type BookingResponse struct {
	ID            int64
	RoomID        int64
	UserID        int64
	BookerName    string
	StartTime     string
	DurationLabel string
	Status        string
}

// HistoryItemResponse запись истории с названием комнаты
type HistoryItemResponse struct {
	BookingID     int64
	BookerName    string
	RoomName      string
	StartTime     string
	DurationLabel string
	Status        string
}

// SchedulerView данные страницы расписания
type SchedulerView struct {
	Rooms    []*roomModels.RoomResponse
	Bookings []*BookingResponse
}

// DashboardView данные главной страницы
type DashboardView struct {
	Rooms          []*roomModels.RoomResponse
	TotalRooms     int
	AvailableRooms int
	BookingCount   int // все бронирования для администратора, иначе свои
	History        []*HistoryItemResponse
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		RoomID:        b.RoomID,
		UserID:        b.UserID,
		BookerName:    b.BookerName,
		StartTime:     b.StartTime,
		DurationLabel: b.DurationLabel,
		Status:        string(b.Status),
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// FromDomainHistory конвертирует историю бронирований
func FromDomainHistory(items []*domain.BookingHistoryItem) []*HistoryItemResponse {
	result := make([]*HistoryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, &HistoryItemResponse{
			BookingID:     item.BookingID,
			BookerName:    item.BookerName,
			RoomName:      item.RoomName,
			StartTime:     item.StartTime,
			DurationLabel: item.DurationLabel,
			Status:        string(item.Status),
		})
	}
	return result
}

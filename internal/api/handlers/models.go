package handlers

import (
	bookingModels "github.com/m04kA/EduManager-BookingService/internal/service/bookings/models"
	roomModels "github.com/m04kA/EduManager-BookingService/internal/service/rooms/models"
)

// RoomResponse комната в ответах API
type RoomResponse struct {
	ID        int64  `json:"id"`
	RoomName  string `json:"room_name"`
	Capacity  int    `json:"capacity"`
	Equipment string `json:"equipment"`
	Status    string `json:"status"`
}

// HistoryItemResponse запись истории бронирований
type HistoryItemResponse struct {
	BookingID  int64  `json:"booking_id"`
	BookerName string `json:"booker_name"`
	RoomName   string `json:"room_name"`
	StartTime  string `json:"start_time"`
	Duration   string `json:"duration"`
	Status     string `json:"status"`
}

// FromServiceRooms конвертирует комнаты сервиса в HTTP модель
func FromServiceRooms(rooms []*roomModels.RoomResponse) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, RoomResponse{
			ID:        r.ID,
			RoomName:  r.Name,
			Capacity:  r.Capacity,
			Equipment: r.Equipment,
			Status:    r.Status,
		})
	}
	return result
}

// FromServiceHistory конвертирует историю бронирований в HTTP модель
func FromServiceHistory(items []*bookingModels.HistoryItemResponse) []HistoryItemResponse {
	result := make([]HistoryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, HistoryItemResponse{
			BookingID:  item.BookingID,
			BookerName: item.BookerName,
			RoomName:   item.RoomName,
			StartTime:  item.StartTime,
			Duration:   item.DurationLabel,
			Status:     item.Status,
		})
	}
	return result
}

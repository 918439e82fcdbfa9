package models

import "github.com/m04kA/EduManager-BookingService/internal/domain"

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Name      string
	Capacity  int
	Equipment string
	Status    *string // nil = Available
}

// UpdateRoomRequest частичное обновление комнаты (nil = не менять)
type UpdateRoomRequest struct {
	RoomID    int64
	Name      *string
	Capacity  *int
	Equipment *string
	Status    *string
}

// UpdateRoomResult результат обновления комнаты
type UpdateRoomResult struct {
	Room               *RoomResponse
	MaintenanceApplied bool  // комната переведена в обслуживание
	CancelledBookings  int64 // сколько бронирований удалено
}

// RoomResponse комната
type RoomResponse struct {
	ID        int64
	Name      string
	Capacity  int
	Equipment string
	Status    string
}

// FromDomainRoom конвертирует domain.Room в RoomResponse
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Equipment: r.Equipment,
		Status:    string(r.Status),
	}
}

// FromDomainRoomList конвертирует список комнат
func FromDomainRoomList(rooms []*domain.Room) []*RoomResponse {
	result := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, FromDomainRoom(r))
	}
	return result
}

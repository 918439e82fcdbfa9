package create_room

import (
	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/rooms/models"
)

// CreateRoomRequest HTTP request model
type CreateRoomRequest struct {
	RoomName  string  `json:"room_name" validate:"required,max=100"`
	Capacity  int     `json:"capacity" validate:"gte=0"`
	Equipment string  `json:"equipment" validate:"max=255"`
	Status    *string `json:"status,omitempty"`
}

// CreateRoomResponse HTTP response model
type CreateRoomResponse struct {
	Status string                `json:"status"`
	Room   handlers.RoomResponse `json:"room"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRoomRequest) ToServiceRequest() *models.CreateRoomRequest {
	return &models.CreateRoomRequest{
		Name:      r.RoomName,
		Capacity:  r.Capacity,
		Equipment: r.Equipment,
		Status:    r.Status,
	}
}

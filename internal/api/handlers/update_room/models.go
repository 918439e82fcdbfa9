package update_room

import "github.com/m04kA/EduManager-BookingService/internal/service/rooms/models"

// UpdateRoomRequest HTTP request model; отсутствующие поля не меняются
type UpdateRoomRequest struct {
	RoomID    int64   `json:"room_id" validate:"required,gt=0"`
	RoomName  *string `json:"room_name,omitempty" validate:"omitempty,min=1,max=100"`
	Capacity  *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Equipment *string `json:"equipment,omitempty" validate:"omitempty,max=255"`
	Status    *string `json:"status,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRoomRequest) ToServiceRequest() *models.UpdateRoomRequest {
	return &models.UpdateRoomRequest{
		RoomID:    r.RoomID,
		Name:      r.RoomName,
		Capacity:  r.Capacity,
		Equipment: r.Equipment,
		Status:    r.Status,
	}
}

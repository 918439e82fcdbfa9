package list_rooms

import "github.com/m04kA/EduManager-BookingService/internal/api/handlers"

// ListRoomsResponse HTTP response model
type ListRoomsResponse struct {
	Status string                  `json:"status"`
	Rooms  []handlers.RoomResponse `json:"rooms"`
}

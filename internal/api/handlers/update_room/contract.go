package update_room

import (
	"context"

	"github.com/m04kA/EduManager-BookingService/internal/service/rooms/models"
)

type RoomService interface {
	Update(ctx context.Context, req *models.UpdateRoomRequest) (*models.UpdateRoomResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

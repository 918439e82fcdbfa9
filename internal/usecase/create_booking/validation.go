package create_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	// Несуществующий идентификатор комнаты: та же ошибка, что и для отсутствующей комнаты
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive, got %d", ErrRoomNotFound, req.RoomID)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.BookerName) == "" {
		return fmt.Errorf("%w: bookerName is required", ErrInvalidInput)
	}

	return nil
}

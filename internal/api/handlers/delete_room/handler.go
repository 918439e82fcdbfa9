package delete_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/rooms"
)

const msgNotFound = "Không tìm thấy phòng!"

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/rooms/delete
// Бронирования комнаты удаляются каскадно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/rooms/delete - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	if err := h.service.Delete(r.Context(), req.RoomID); err != nil {
		if errors.Is(err, rooms.ErrRoomNotFound) {
			handlers.RespondBusinessError(w, msgNotFound)
			return
		}
		h.logger.Error("POST /api/rooms/delete - Failed to delete room: room_id=%d, error=%v", req.RoomID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/rooms/delete - Room deleted: room_id=%d", req.RoomID)
	handlers.RespondSuccess(w, "")
}

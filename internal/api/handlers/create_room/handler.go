package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/rooms"
	roomModels "github.com/m04kA/EduManager-BookingService/internal/service/rooms/models"
)

const (
	msgNameTaken     = "Tên phòng đã tồn tại!"
	msgInvalidStatus = "Trạng thái phòng không hợp lệ!"
)

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

// Handle POST /api/rooms/create
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/rooms/create - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	room, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrNameTaken):
			handlers.RespondBusinessError(w, msgNameTaken)
		case errors.Is(err, rooms.ErrInvalidStatus):
			handlers.RespondBusinessError(w, msgInvalidStatus)
		case errors.Is(err, rooms.ErrInvalidInput):
			handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		default:
			h.logger.Error("POST /api/rooms/create - Failed to create room: name=%q, error=%v", req.RoomName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/rooms/create - Room created: room_id=%d", room.ID)
	handlers.RespondJSON(w, http.StatusOK, CreateRoomResponse{
		Status: handlers.StatusSuccess,
		Room:   handlers.FromServiceRooms([]*roomModels.RoomResponse{room})[0],
	})
}

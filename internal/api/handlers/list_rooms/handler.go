package list_rooms

import (
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
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

// Handle GET /api/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /api/rooms - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListRoomsResponse{
		Status: handlers.StatusSuccess,
		Rooms:  handlers.FromServiceRooms(rooms),
	})
}

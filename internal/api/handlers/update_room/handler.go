package update_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/rooms"
)

const (
	msgNotFound      = "Không tìm thấy phòng!"
	msgMaintenance   = "Đã chuyển sang bảo trì và hủy tất cả lịch đặt của phòng này!"
	msgUpdated       = "Cập nhật thông tin phòng thành công!"
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

// Handle POST /api/rooms/update
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/rooms/update - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			handlers.RespondBusinessError(w, msgNotFound)
		case errors.Is(err, rooms.ErrNameTaken):
			handlers.RespondBusinessError(w, msgNameTaken)
		case errors.Is(err, rooms.ErrInvalidStatus):
			handlers.RespondBusinessError(w, msgInvalidStatus)
		case errors.Is(err, rooms.ErrInvalidInput):
			handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		default:
			h.logger.Error("POST /api/rooms/update - Failed to update room: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.MaintenanceApplied {
		h.logger.Info("POST /api/rooms/update - Room moved to maintenance: room_id=%d, cancelled=%d",
			req.RoomID, result.CancelledBookings)
		handlers.RespondSuccess(w, msgMaintenance)
		return
	}

	h.logger.Info("POST /api/rooms/update - Room updated: room_id=%d", req.RoomID)
	handlers.RespondSuccess(w, msgUpdated)
}

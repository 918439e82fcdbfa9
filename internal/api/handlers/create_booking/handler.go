package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/EduManager-BookingService/internal/usecase/create_booking"
)

const (
	msgRoomNotFound    = "Phòng không tồn tại!"
	msgRoomMaintenance = "Phòng đang bảo trì, không thể đặt!"
	msgInvalidTime     = "Lỗi định dạng thời gian!"
	msgCreated         = "Đặt phòng thành công!"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings/create
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, middleware.MsgNotLoggedIn)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/bookings/create - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user))
	if err != nil {
		var conflict *createBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /api/bookings/create - Conflict: user_id=%d, room_id=%d, with booking_id=%d",
				user.ID, req.RoomID, conflict.BookingID)
			handlers.RespondBusinessError(w, conflict.Message())

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /api/bookings/create - Room not found: room_id=%d", req.RoomID)
			handlers.RespondBusinessError(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomMaintenance):
			h.logger.Warn("POST /api/bookings/create - Room under maintenance: room_id=%d", req.RoomID)
			handlers.RespondBusinessError(w, msgRoomMaintenance)

		case errors.Is(err, createBooking.ErrInvalidStartTime), errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /api/bookings/create - Invalid time: start=%q, duration=%q: %v",
				req.StartTime, req.DurationDisplay, err)
			handlers.RespondBusinessError(w, msgInvalidTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /api/bookings/create - Invalid input: %v", err)
			handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)

		default:
			h.logger.Error("POST /api/bookings/create - Failed to create booking: user_id=%d, room_id=%d, error=%v",
				user.ID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/bookings/create - Booking created successfully: booking_id=%d, user_id=%d, room_id=%d",
		result.ID, user.ID, req.RoomID)
	handlers.RespondJSON(w, http.StatusOK, CreateBookingResponse{
		Status:  handlers.StatusSuccess,
		Message: msgCreated,
		Booking: FromUseCaseResponse(result),
	})
}

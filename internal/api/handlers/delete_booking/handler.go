package delete_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/api/middleware"
	"github.com/m04kA/EduManager-BookingService/internal/service/bookings"
)

const (
	msgNotFound  = "Lỗi"
	msgForbidden = "Không có quyền"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/bookings/delete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, middleware.MsgNotLoggedIn)
		return
	}

	var req DeleteBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/bookings/delete - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	if err := h.service.Delete(r.Context(), user, req.BookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /api/bookings/delete - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondBusinessError(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /api/bookings/delete - Access denied: booking_id=%d, user_id=%d", req.BookingID, user.ID)
			handlers.RespondBusinessError(w, msgForbidden)

		default:
			h.logger.Error("POST /api/bookings/delete - Failed to delete booking: booking_id=%d, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/bookings/delete - Booking deleted: booking_id=%d, user_id=%d", req.BookingID, user.ID)
	handlers.RespondSuccess(w, "")
}

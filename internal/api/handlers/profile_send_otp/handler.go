package profile_send_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/api/middleware"
	"github.com/m04kA/EduManager-BookingService/internal/service/profile"
)

const (
	msgSent       = "Đã gửi mã xác thực."
	msgMailFailed = "Không thể gửi email."
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/profile/send-otp
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondBusinessError(w, middleware.MsgNotLoggedIn)
		return
	}

	if err := h.service.SendOTP(r.Context(), user); err != nil {
		if errors.Is(err, profile.ErrMailDelivery) {
			h.logger.Warn("POST /api/profile/send-otp - Mail delivery failed: user_id=%d", user.ID)
			handlers.RespondBusinessError(w, msgMailFailed)
			return
		}
		h.logger.Error("POST /api/profile/send-otp - Failed to send code: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/profile/send-otp - Code sent: user_id=%d", user.ID)
	handlers.RespondSuccess(w, msgSent)
}

package forgot_send_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth"
)

const (
	msgSentTo       = "Đã gửi mã tới "
	msgUserNotFound = "User không tồn tại"
	msgMailFailed   = "Lỗi gửi mail"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/forgot/send-otp
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/forgot/send-otp - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	masked, err := h.service.SendResetOTP(r.Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			handlers.RespondBusinessError(w, msgUserNotFound)
		case errors.Is(err, auth.ErrMailDelivery):
			h.logger.Warn("POST /api/forgot/send-otp - Mail delivery failed: username=%s", req.Username)
			handlers.RespondBusinessError(w, msgMailFailed)
		default:
			h.logger.Error("POST /api/forgot/send-otp - Failed to send code: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondSuccess(w, msgSentTo+masked)
}

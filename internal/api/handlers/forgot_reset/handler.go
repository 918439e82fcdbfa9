package forgot_reset

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth"
)

const (
	msgReset        = "Đổi mật khẩu thành công!"
	msgUserNotFound = "User không tồn tại"
	msgInvalidOTP   = "Sai mã OTP!"
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

// Handle POST /api/forgot/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResetRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/forgot/reset - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.ToServiceRequest()); err != nil {
		if msg, ok := handlers.PasswordPolicyMessage(err); ok {
			handlers.RespondBusinessError(w, msg)
			return
		}
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			handlers.RespondBusinessError(w, msgUserNotFound)
		case errors.Is(err, auth.ErrInvalidOTP):
			h.logger.Warn("POST /api/forgot/reset - Invalid otp: username=%s", req.Username)
			handlers.RespondBusinessError(w, msgInvalidOTP)
		default:
			h.logger.Error("POST /api/forgot/reset - Failed to reset password: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/forgot/reset - Password reset: username=%s", req.Username)
	handlers.RespondSuccess(w, msgReset)
}

package register_send_otp

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth/models"
)

const (
	msgSent          = "Đã gửi mã!"
	msgUsernameTaken = "Tên đăng nhập đã tồn tại!"
	msgEmailTaken    = "Email này đã được sử dụng!"
	msgMailFailed    = "Lỗi gửi mail. Hãy kiểm tra lại Email!"
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

// Handle POST /api/register/send-otp
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/register/send-otp - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	err := h.service.SendRegistrationOTP(r.Context(), models.SendRegistrationOTPRequest{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			handlers.RespondBusinessError(w, msgUsernameTaken)
		case errors.Is(err, auth.ErrEmailTaken):
			handlers.RespondBusinessError(w, msgEmailTaken)
		case errors.Is(err, auth.ErrMailDelivery):
			h.logger.Warn("POST /api/register/send-otp - Mail delivery failed: username=%s", req.Username)
			handlers.RespondBusinessError(w, msgMailFailed)
		default:
			h.logger.Error("POST /api/register/send-otp - Failed to send code: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondSuccess(w, msgSent)
}

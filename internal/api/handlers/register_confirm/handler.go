package register_confirm

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth"
)

const (
	msgRegistered    = "Đăng ký thành công!"
	msgUsernameTaken = "Tên đăng nhập này đã có người sử dụng!"
	msgFullNameTaken = "Họ và tên này đã tồn tại! Vui lòng thêm ký tự để phân biệt."
	msgEmailTaken    = "Email này đã được sử dụng!"
	msgInvalidRole   = "Vai trò không hợp lệ!"
	msgInvalidOTP    = "Mã OTP không đúng!"
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

// Handle POST /api/register/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/register/confirm - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	user, err := h.service.ConfirmRegistration(r.Context(), req.ToServiceRequest())
	if err != nil {
		if msg, ok := handlers.PasswordPolicyMessage(err); ok {
			handlers.RespondBusinessError(w, msg)
			return
		}
		switch {
		case errors.Is(err, auth.ErrUsernameTaken):
			handlers.RespondBusinessError(w, msgUsernameTaken)
		case errors.Is(err, auth.ErrFullNameTaken):
			handlers.RespondBusinessError(w, msgFullNameTaken)
		case errors.Is(err, auth.ErrEmailTaken):
			handlers.RespondBusinessError(w, msgEmailTaken)
		case errors.Is(err, auth.ErrInvalidRole):
			handlers.RespondBusinessError(w, msgInvalidRole)
		case errors.Is(err, auth.ErrInvalidOTP):
			h.logger.Warn("POST /api/register/confirm - Invalid otp: username=%s", req.Username)
			handlers.RespondBusinessError(w, msgInvalidOTP)
		default:
			h.logger.Error("POST /api/register/confirm - Failed to register: username=%s, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/register/confirm - User registered: user_id=%d", user.ID)
	handlers.RespondSuccess(w, msgRegistered)
}

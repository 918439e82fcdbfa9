package profile_change_password

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/api/middleware"
	"github.com/m04kA/EduManager-BookingService/internal/service/profile"
)

const (
	msgChanged    = "Cập nhật mật khẩu thành công!"
	msgInvalidOTP = "Mã xác thực không đúng!"
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

// Handle POST /api/profile/change-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondBusinessError(w, middleware.MsgNotLoggedIn)
		return
	}

	var req ChangePasswordRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/profile/change-password - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	if err := h.service.ChangePassword(r.Context(), user, req.ToServiceRequest()); err != nil {
		if msg, ok := handlers.PasswordPolicyMessage(err); ok {
			handlers.RespondBusinessError(w, msg)
			return
		}
		if errors.Is(err, profile.ErrInvalidOTP) {
			h.logger.Warn("POST /api/profile/change-password - Invalid otp: user_id=%d", user.ID)
			handlers.RespondBusinessError(w, msgInvalidOTP)
			return
		}
		h.logger.Error("POST /api/profile/change-password - Failed to change password: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/profile/change-password - Password changed: user_id=%d", user.ID)
	handlers.RespondSuccess(w, msgChanged)
}

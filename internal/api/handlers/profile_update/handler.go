package profile_update

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/api/middleware"
	"github.com/m04kA/EduManager-BookingService/internal/service/profile"
)

const (
	msgUpdated     = "Cập nhật thành công!"
	msgOTPRequired = "Cần xác thực OTP"
	msgInvalidOTP  = "Mã OTP không đúng!"
	msgEmailTaken  = "Email này đã được sử dụng!"
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

// Handle POST /api/profile/update
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondBusinessError(w, middleware.MsgNotLoggedIn)
		return
	}

	var req UpdateProfileRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/profile/update - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	if err := h.service.Update(r.Context(), user, req.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, profile.ErrOTPRequired):
			handlers.RespondRequireOTP(w, msgOTPRequired)

		case errors.Is(err, profile.ErrInvalidOTP):
			h.logger.Warn("POST /api/profile/update - Invalid otp: user_id=%d", user.ID)
			handlers.RespondBusinessError(w, msgInvalidOTP)

		case errors.Is(err, profile.ErrEmailTaken):
			h.logger.Warn("POST /api/profile/update - Email taken: user_id=%d", user.ID)
			handlers.RespondBusinessError(w, msgEmailTaken)

		default:
			h.logger.Error("POST /api/profile/update - Failed to update profile: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/profile/update - Profile updated: user_id=%d", user.ID)
	handlers.RespondSuccess(w, msgUpdated)
}

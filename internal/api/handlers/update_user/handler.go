package update_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/users"
)

const (
	msgNotFound    = "User không tồn tại"
	msgInvalidRole = "Vai trò không hợp lệ!"
	msgEmailTaken  = "Email này đã được sử dụng!"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/users/update
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/users/update - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	if err := h.service.Update(r.Context(), req.ToServiceRequest()); err != nil {
		if msg, ok := handlers.PasswordPolicyMessage(err); ok {
			handlers.RespondBusinessError(w, msg)
			return
		}
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondBusinessError(w, msgNotFound)
		case errors.Is(err, users.ErrInvalidRole):
			handlers.RespondBusinessError(w, msgInvalidRole)
		case errors.Is(err, users.ErrEmailTaken):
			handlers.RespondBusinessError(w, msgEmailTaken)
		default:
			h.logger.Error("POST /api/users/update - Failed to update user: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/users/update - User updated: user_id=%d", req.UserID)
	handlers.RespondSuccess(w, "")
}

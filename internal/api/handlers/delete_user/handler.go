package delete_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/api/middleware"
	"github.com/m04kA/EduManager-BookingService/internal/service/users"
)

const (
	msgNotFound   = "User không tồn tại"
	msgSelfDelete = "Không thể xóa chính mình!"
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

// Handle POST /api/users/delete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, middleware.MsgNotLoggedIn)
		return
	}

	var req DeleteUserRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/users/delete - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, handlers.MsgInvalidRequest)
		return
	}

	if err := h.service.Delete(r.Context(), actor, req.UserID); err != nil {
		switch {
		case errors.Is(err, users.ErrSelfDelete):
			handlers.RespondBusinessError(w, msgSelfDelete)
		case errors.Is(err, users.ErrUserNotFound):
			handlers.RespondBusinessError(w, msgNotFound)
		default:
			h.logger.Error("POST /api/users/delete - Failed to delete user: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/users/delete - User deleted: user_id=%d, by admin_id=%d", req.UserID, actor.ID)
	handlers.RespondSuccess(w, "")
}

package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth"
	"github.com/m04kA/EduManager-BookingService/internal/service/auth/models"
)

const msgInvalidCredentials = "Sai tài khoản hoặc mật khẩu"

type Handler struct {
	service AuthService
	cookie  handlers.SessionCookie
	logger  Logger
}

func NewHandler(service AuthService, cookie handlers.SessionCookie, logger Logger) *Handler {
	return &Handler{
		service: service,
		cookie:  cookie,
		logger:  logger,
	}
}

// Handle POST /api/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /api/login - Invalid request body: %v", err)
		handlers.RespondBusinessError(w, msgInvalidCredentials)
		return
	}

	result, err := h.service.Login(r.Context(), models.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			handlers.RespondBusinessError(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /api/login - Failed to login: username=%s, error=%v", req.Username, err)
		handlers.RespondInternalError(w)
		return
	}

	h.cookie.Set(w, result.Token)
	h.logger.Info("POST /api/login - User logged in: user_id=%d", result.UserID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{Status: handlers.StatusSuccess, Role: result.Role})
}

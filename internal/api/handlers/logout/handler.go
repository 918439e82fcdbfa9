package logout

import (
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
)

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

// Handle POST|GET /api/logout, GET /logout
// Cookie очищается даже при ошибке Redis
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), h.cookie.Token(r)); err != nil {
		h.logger.Warn("%s %s - Failed to delete session: %v", r.Method, r.URL.Path, err)
	}

	h.cookie.Clear(w)
	handlers.RespondSuccess(w, "")
}

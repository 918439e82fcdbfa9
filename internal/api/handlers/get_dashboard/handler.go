package get_dashboard

import (
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/api/middleware"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondBusinessError(w, middleware.MsgNotLoggedIn)
		return
	}

	view, err := h.service.Dashboard(r.Context(), user)
	if err != nil {
		h.logger.Error("GET /api/dashboard - Failed to load dashboard: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceView(user, view))
}

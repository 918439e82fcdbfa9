package get_profile

import (
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
	"github.com/m04kA/EduManager-BookingService/internal/api/middleware"
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

// Handle GET /api/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		handlers.RespondBusinessError(w, middleware.MsgNotLoggedIn)
		return
	}

	view, err := h.service.Get(r.Context(), user)
	if err != nil {
		h.logger.Error("GET /api/profile - Failed to load profile: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceView(view))
}

package get_scheduler

import (
	"net/http"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
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

// Handle GET /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Scheduler(r.Context())
	if err != nil {
		h.logger.Error("GET /api/bookings - Failed to load scheduler: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceView(view))
}

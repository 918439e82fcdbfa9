package healthz

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/m04kA/EduManager-BookingService/internal/api/handlers"
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

type Handler struct {
	checks  map[string]Check
	timeout time.Duration
	logger  Logger
}

func NewHandler(checks map[string]Check, timeout time.Duration, logger Logger) *Handler {
	return &Handler{
		checks:  checks,
		timeout: timeout,
		logger:  logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := HealthResponse{Status: statusOK, Checks: make(map[string]string, len(names))}
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			h.logger.Warn("GET /healthz - %s unavailable: %v", name, err)
			resp.Checks[name] = err.Error()
			resp.Status = statusDegraded
			continue
		}
		resp.Checks[name] = statusOK
	}

	code := http.StatusOK
	if resp.Status != statusOK {
		code = http.StatusServiceUnavailable
	}
	handlers.RespondJSON(w, code, resp)
}

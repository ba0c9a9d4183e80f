package handler

import (
	"net/http"
	"time"
)

// HealthHandler reports process liveness and build information.
type HealthHandler struct {
	environment string
	version     string
	startedAt   time.Time
}

// NewHealthHandler creates a HealthHandler anchored at the current time,
// so the reported uptime measures this process.
func NewHealthHandler(environment, version string) *HealthHandler {
	return &HealthHandler{
		environment: environment,
		version:     version,
		startedAt:   time.Now(),
	}
}

type healthStatus struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
	Version     string  `json:"version"`
}

// HandleCheck responds with a 200 OK and the current health snapshot.
func (h *HealthHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthStatus{
		Status:      "healthy",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Uptime:      time.Since(h.startedAt).Seconds(),
		Environment: h.environment,
		Version:     h.version,
	})
}

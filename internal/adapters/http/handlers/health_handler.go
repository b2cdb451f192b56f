package handlers

import (
	"net/http"

	"github.com/glowtours/backoffice/internal/ports"
)

const (
	healthOK       = "ok"
	healthReady    = "ready"
	healthNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes. Readiness fans
// out to every registered checker, which includes the store and the
// company-registry client.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always 200; the process is up.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": healthOK})
}

// Readiness handles GET /health/ready. A single failing check flips the
// response to 503 so the load balancer stops routing here.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	ready := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			ready = false
			continue
		}
		checks[name] = healthOK
	}

	status, code := healthReady, http.StatusOK
	if !ready {
		status, code = healthNotReady, http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}

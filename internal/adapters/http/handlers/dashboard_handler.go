package handlers

import (
	"net/http"

	"github.com/glowtours/backoffice/internal/adapters/http/dto"
	"github.com/glowtours/backoffice/internal/ports"
)

// DashboardHandler handles the admin dashboard endpoint.
type DashboardHandler struct {
	svc ports.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the given service
// port.
func NewDashboardHandler(svc ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary handles GET /api/v1/dashboard.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToDashboardResponse(summary))
}
